package errors

import (
	"net/http"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTimeout            ErrorCode = "COMMON_005"
	ErrCodeValidation         ErrorCode = "COMMON_006"
	ErrCodeSerialization      ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
)

// Discovery Module Error Codes
//
// ErrCodeNoMatchingPlaces is the business-failure code raised when a
// non-empty candidate set is reduced to zero by filtering or quality
// acceptance. It is a caller problem (region too narrow, constraints too
// strict), not a system fault, and maps to a 4xx response.
const (
	ErrCodeNoMatchingPlaces    ErrorCode = "DISC_001"
	ErrCodeRegionInvalid       ErrorCode = "DISC_002"
	ErrCodeKeywordsEmpty       ErrorCode = "DISC_003"
	ErrCodeProviderUnavailable ErrorCode = "DISC_004"
	ErrCodeVerificationFailed  ErrorCode = "DISC_005"
)

// Cache Error Codes
const (
	ErrCodeCacheError       ErrorCode = "CACHE_001"
	ErrCodeCacheUnavailable ErrorCode = "CACHE_002"
)

// Geographic / Routing Error Codes
const (
	ErrCodeCoordinateMissing ErrorCode = "GEO_001"
	ErrCodeDistrictUnknown   ErrorCode = "GEO_002"
	ErrCodeRouteEmpty        ErrorCode = "ROUTE_001"
)

// Infrastructure Error Codes
const (
	ErrCodeDatabaseError    ErrorCode = "INFRA_001"
	ErrCodeSearchIndexError ErrorCode = "INFRA_002"
)

// CodeOK is the sentinel code returned by GetCode for a nil error.
const CodeOK = ErrorCode("OK")

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes. Codes absent
// from the map resolve to 500 via HTTPStatus.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,

	ErrCodeNoMatchingPlaces:    http.StatusUnprocessableEntity,
	ErrCodeRegionInvalid:       http.StatusBadRequest,
	ErrCodeKeywordsEmpty:       http.StatusBadRequest,
	ErrCodeProviderUnavailable: http.StatusBadGateway,
	ErrCodeVerificationFailed:  http.StatusInternalServerError,

	ErrCodeCacheError:       http.StatusInternalServerError,
	ErrCodeCacheUnavailable: http.StatusServiceUnavailable,

	ErrCodeCoordinateMissing: http.StatusBadRequest,
	ErrCodeDistrictUnknown:   http.StatusBadRequest,
	ErrCodeRouteEmpty:        http.StatusUnprocessableEntity,

	ErrCodeDatabaseError:    http.StatusInternalServerError,
	ErrCodeSearchIndexError: http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code associated with c, defaulting to
// 500 for unmapped codes so that unknown failures are never reported as
// client errors.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := ErrorCodeHTTPStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

//Personal.AI order the ending
