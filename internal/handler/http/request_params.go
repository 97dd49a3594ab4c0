package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/socialpulse/socialpulse/internal/utils"
)

// errNoUserInContext signals a request that reached a protected handler
// without passing the auth middleware. Treated as a server bug.
var errNoUserInContext = errors.New("no authenticated user in request context")

// userIDFromRequest retrieves the authenticated user's ID placed in the
// request context by the auth middleware.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, errNoUserInContext
	}
	return userID, nil
}

// int64URLParam parses the named chi URL parameter as a base-10 int64.
func int64URLParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// intQueryParam parses the named query parameter as an int, returning
// fallback when the parameter is absent or malformed.
func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// int64QueryParam parses the named query parameter as an int64, returning
// fallback when the parameter is absent or malformed.
func int64QueryParam(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return value
}
