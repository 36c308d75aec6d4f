package http

import (
	"errors"
	"net/http"

	"github.com/elisee/account-service/internal/service"
	"github.com/elisee/account-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmailAlreadyInUse:   http.StatusConflict,
	service.ErrAccountNotFound:     http.StatusNotFound,
	service.ErrAccountNotConfirmed: http.StatusForbidden,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrAccountNotFound:    http.StatusNotFound,
	store.ErrTokenNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
