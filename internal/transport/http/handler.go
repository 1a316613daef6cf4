package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/pkg/ctxmeta"
	"github.com/Gunvolt24/oppify/pkg/httpx"
	"github.com/Gunvolt24/oppify/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Handler — HTTP-обработчики возможностей и аутентификации.
type Handler struct {
	opportunities ports.OpportunityService
	auth          ports.AuthService
	log           ports.Logger
	reqTimeout    time.Duration
}

// NewHandler — reqTimeout <= 0 отключает собственный таймаут обработчика.
func NewHandler(
	opportunities ports.OpportunityService,
	auth ports.AuthService,
	log ports.Logger,
	reqTimeout time.Duration,
) *Handler {
	return &Handler{
		opportunities: opportunities,
		auth:          auth,
		log:           log,
		reqTimeout:    reqTimeout,
	}
}

// withTimeout — контекст запроса с таймаутом обработчика.
func (h *Handler) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

func (h *Handler) listOpportunities(c *gin.Context) {
	filter, err := httpx.ParseOpportunityFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	list, err := h.opportunities.List(ctx, filter)
	if err != nil {
		h.writeError(c, "List", err)
		return
	}
	if list == nil {
		list = []*domain.Opportunity{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) createOpportunity(c *gin.Context) {
	var req validate.OpportunityPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	created, err := h.opportunities.Create(ctx, req.ToDomain())
	if err != nil {
		h.writeError(c, "Create", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) applyOpportunity(c *gin.Context) {
	oppID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || oppID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}
	userID, ok := ctxmeta.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errNotAuthenticated})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	app, err := h.opportunities.Apply(ctx, userID, oppID)
	if err != nil {
		h.writeError(c, "Apply", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *Handler) myApplications(c *gin.Context) {
	userID, ok := ctxmeta.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errNotAuthenticated})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	list, err := h.opportunities.MyApplications(ctx, userID)
	if err != nil {
		h.writeError(c, "MyApplications", err)
		return
	}
	if list == nil {
		list = []*domain.Opportunity{}
	}
	c.JSON(http.StatusOK, list)
}
