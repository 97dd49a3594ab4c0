package http

import (
	"errors"
	"net/http"

	"github.com/socialpulse/socialpulse/internal/service"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/internal/validators"
	"github.com/socialpulse/socialpulse/models"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidUsername:    http.StatusBadRequest,
	validators.ErrInvalidEmail:       http.StatusBadRequest,
	validators.ErrInvalidPassword:    http.StatusBadRequest,
	validators.ErrInvalidPlatform:    http.StatusBadRequest,
	validators.ErrInvalidAccountName: http.StatusBadRequest,
	validators.ErrEmptyContent:       http.StatusBadRequest,

	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrTokenMissingSubject: http.StatusUnauthorized,
	service.ErrExportFormat:        http.StatusBadRequest,

	store.ErrNotOwner: http.StatusForbidden,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrPostNotFound:    http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrSnapshotWrite:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the structured error payload with the status derived from
// the error chain.
func writeError(w http.ResponseWriter, err error) {
	writeJSONError(w, err.Error(), statusFromError(err))
}

// writeJSONError sends an [models.ErrorResponse] with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
