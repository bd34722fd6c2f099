// Package response maps domain errors to HTTP responses and provides the
// small set of JSON helpers the controllers use. Error bodies carry a
// single "detail" field.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helix90/list-handler/internal/api/apperrors"
)

// Detail is the error body shape: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// JSON writes a success payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error maps a domain error to its status and writes the detail body.
// Errors outside the taxonomy surface as a storage failure; their message
// is not echoed to the caller.
func Error(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		Unauthenticated(c)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(status, Detail{Detail: err.Error()})
	case status == http.StatusInternalServerError:
		c.JSON(status, Detail{Detail: apperrors.ErrStorageUnavailable.Error()})
	default:
		c.JSON(status, Detail{Detail: err.Error()})
	}
}

// Unauthenticated writes the 401 used for every token failure, with the
// WWW-Authenticate challenge the bearer scheme requires.
func Unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, Detail{Detail: apperrors.ErrUnauthenticated.Error()})
}

// BadRequest writes a 400 with the given message, used for request
// binding failures.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Detail{Detail: message})
}
