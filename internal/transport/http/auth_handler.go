package rest

import (
	"net/http"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Password          string   `json:"password" binding:"required,min=6"`
	TwelfthPercentage *float64 `json:"twelfth_percentage" binding:"omitempty,gte=0,lte=100"`
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	user, err := h.auth.Register(ctx, &domain.User{
		Name:              req.Name,
		Email:             req.Email,
		TwelfthPercentage: req.TwelfthPercentage,
		Skills:            nonNil(req.Skills),
		Interests:         nonNil(req.Interests),
	}, req.Password)
	if err != nil {
		h.writeError(c, "Register", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(c, "Login", err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
