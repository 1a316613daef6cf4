package rest

import (
	"net/http"
	"strings"

	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequireAuth — проверяет "Authorization: Bearer <token>" и кладёт id пользователя в контекст.
// Без валидного токена запрос дальше не идёт (401).
func RequireAuth(verifier ports.TokenVerifier, log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}
		userID, err := verifier.Verify(token)
		if err != nil {
			log.Warnf(c.Request.Context(), "auth rejected path=%s: %v", c.Request.URL.Path, err)
			unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(ctxmeta.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errNotAuthenticated})
}
