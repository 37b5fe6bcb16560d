package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veritrav/veritrav/internal/application/discovery"
)

// NewVerificationsCmd lists stored verification outcomes for a region.
func NewVerificationsCmd(repo discovery.VerificationRepository, rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "verifications <region>",
		Short: "List stored verification results for a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region := args[0]
			records, err := repo.ResultsByRegion(cmd.Context(), region, limit)
			if err != nil {
				return err
			}

			if rootOpts.OutputFormat == "json" {
				return printJSON(records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "no verification results for %s\n", region)
				return nil
			}
			for _, rec := range records {
				status := "unverified"
				if rec.Verified {
					status = "verified"
				}
				fmt.Fprintf(out, "%-30s %-10s score=%.2f signals=%d\n",
					rec.PlaceName, status, rec.QualityScore, rec.SignalCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of results")
	return cmd
}

//Personal.AI order the ending
