// Package handlers implements the HTTP endpoints for place discovery,
// verification history and health checks.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeAppError maps an application error to its HTTP status.  User-request
// failures keep their message and detail; everything else is masked.
func writeAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := code.HTTPStatus()

	resp := ErrorResponse{Code: code.String()}
	if apperrors.IsUserRequestError(err) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			resp.Message = appErr.Message
			resp.Detail = appErr.Detail
		} else {
			resp.Message = err.Error()
		}
	} else {
		resp.Message = "internal server error"
	}

	writeJSON(w, status, resp)
}

// queryInt parses an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

//Personal.AI order the ending
