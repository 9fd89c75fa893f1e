package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/gin-gonic/gin"
)

// statusForError maps the registry error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrContributorNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyInitialized),
		errors.Is(err, services.ErrNotInitialized),
		errors.Is(err, services.ErrContributorAlreadyExists),
		errors.Is(err, services.ErrGithubHandleTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrProofRequired):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidGithubHandle):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrReputationOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
