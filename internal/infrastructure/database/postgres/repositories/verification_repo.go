// Package repositories implements persistence for discovery verification
// results on top of the postgres connection pool.
package repositories

import (
	"context"
	"database/sql"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/infrastructure/database/postgres"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

type verificationRepo struct {
	conn *postgres.Connection
	log  logging.Logger
}

// NewVerificationRepo persists per-place verification outcomes so repeated
// regions can be audited and analyzed across runs.
func NewVerificationRepo(conn *postgres.Connection, log logging.Logger) discovery.VerificationRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &verificationRepo{conn: conn, log: log}
}

// SaveResult upserts the verification outcome for a place within a region.
// A place re-verified in a later run overwrites its previous record.
func (r *verificationRepo) SaveResult(ctx context.Context, rec discovery.VerificationRecord) error {
	query := `
		INSERT INTO verification_results (
			place_name, region, verified, quality_score, signal_count, request_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (region, place_name) DO UPDATE SET
			verified      = EXCLUDED.verified,
			quality_score = EXCLUDED.quality_score,
			signal_count  = EXCLUDED.signal_count,
			request_id    = EXCLUDED.request_id,
			updated_at    = NOW()
	`
	_, err := r.conn.DB().ExecContext(ctx, query,
		rec.PlaceName, rec.Region, rec.Verified, rec.QualityScore, rec.SignalCount, rec.RequestID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to save verification result")
	}
	return nil
}

// ResultsByRegion returns the most recent verification records for a
// region, best quality first.
func (r *verificationRepo) ResultsByRegion(ctx context.Context, region string, limit int) ([]discovery.VerificationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT place_name, region, verified, quality_score, signal_count, request_id
		FROM verification_results
		WHERE region = $1
		ORDER BY quality_score DESC, place_name ASC
		LIMIT $2
	`
	rows, err := r.conn.DB().QueryContext(ctx, query, region, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to query verification results")
	}
	defer rows.Close()

	var records []discovery.VerificationRecord
	for rows.Next() {
		var rec discovery.VerificationRecord
		var requestID sql.NullString
		if err := rows.Scan(&rec.PlaceName, &rec.Region, &rec.Verified,
			&rec.QualityScore, &rec.SignalCount, &requestID); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to scan verification result")
		}
		rec.RequestID = requestID.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to iterate verification results")
	}
	return records, nil
}

//Personal.AI order the ending
