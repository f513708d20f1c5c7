package httpadapter

import (
	"net/http"

	"github.com/vintervu/interview-server/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrUnsupportedFormat),
		domain.IsKind(err, domain.ErrUnknownRole):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrSessionNotFound),
		domain.IsKind(err, domain.ErrNoCompletedSession):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrSessionActive),
		domain.IsKind(err, domain.ErrNoActiveQuestion),
		domain.IsKind(err, domain.ErrNothingToEnd):
		return http.StatusConflict
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
