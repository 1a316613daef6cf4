package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	errNotAuthenticated = "not authenticated"
	errInternal         = "internal server error"
)

// writeError — доменная ошибка → HTTP-статус; ошибки хранилища наружу не отдаются.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var srcErr *domain.InvalidSourceError
	switch {
	case errors.As(err, &srcErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": srcErr.Error()})
	case errors.Is(err, domain.ErrUnknownType), errors.Is(err, domain.ErrInvalidOpportunity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity or user not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}
}
