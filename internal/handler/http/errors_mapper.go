package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/where-is-it/internal/service"
	"github.com/MKhiriev/where-is-it/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,

	ErrNoSessionCookie:    http.StatusUnauthorized,
	ErrEmptySessionCookie: http.StatusUnauthorized,
	ErrOwnerMismatch:      http.StatusForbidden,

	store.ErrPostNotFound:          http.StatusNotFound,
	store.ErrPostNotSaved:          http.StatusInternalServerError,
	store.ErrRecoveredItemNotSaved: http.StatusInternalServerError,
	store.ErrDuplicateIdentifier:   http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
