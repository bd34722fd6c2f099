// Package apperrors defines the sentinel errors shared by the service,
// repository and HTTP layers, together with their HTTP status mapping.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateUser is returned when a registration collides with an
	// existing username or email.
	ErrDuplicateUser = errors.New("username or email already registered")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInactiveUser is returned on login for a deactivated account.
	ErrInactiveUser = errors.New("inactive user")

	// ErrUnauthenticated is returned when a bearer token is missing,
	// malformed, expired, revoked, or its subject no longer exists.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrNotFound is returned when a resource does not exist or does not
	// belong to the acting user. The two cases are indistinguishable so
	// that resource existence is never confirmed to other users.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the database cannot serve a
	// request. It is never retried inside the core.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// HTTPStatus maps a domain error to its HTTP status code. Unknown errors
// are treated as storage failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrInactiveUser):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
