package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS — разрешает запросы фронтенда с указанных origin (с учётными данными).
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderRequestID}
	cfg.ExposeHeaders = []string{HeaderRequestID}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
