package response

import (
	"net/http"

	"user-service/internal/domain"
)

// KeyRequestID is both the header and the gin context key of the request id.
const KeyRequestID = "X-Request-ID"

// Transport-level problem codes that have no catalog entry.
const (
	CodeBodyTooLarge     = "Request.BodyTooLarge"
	CodeTooManyRequests  = "Request.TooManyRequests"
	CodeServerBusy       = "Server.Busy"
	CodeTimeout          = "Server.Timeout"
	CodeInternal         = "Server.Internal"
	CodeUnhealthy        = "Server.Unhealthy"
	CodeRouteNotFound    = "Route.NotFound"
	CodeMethodNotAllowed = "Route.MethodNotAllowed"
)

// StatusOf maps an error category to an HTTP status. Forbidden and
// Unexpected fall through to 500.
func StatusOf(t domain.ErrorType) int {
	switch t {
	case domain.ErrorTypeValidation:
		return http.StatusBadRequest
	case domain.ErrorTypeNotFound:
		return http.StatusNotFound
	case domain.ErrorTypeConflict:
		return http.StatusConflict
	case domain.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
