package rest

import (
	"net/http"
	"slices"
	"strings"

	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterConfig — параметры пайплайна middleware.
type RouterConfig struct {
	// OtelServiceName — пустое значение отключает otelgin.
	OtelServiceName string
	// AllowedOrigins — пустой список отключает CORS.
	AllowedOrigins []string
}

// NewRouter — gin-движок со всеми маршрутами сервиса.
func NewRouter(h *Handler, verifier ports.TokenVerifier, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if cfg.OtelServiceName != "" {
		r.Use(otelgin.Middleware(cfg.OtelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(httpx.CORS(cfg.AllowedOrigins))
	}

	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "Backend running"}) })
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authn := RequireAuth(verifier, h.log)
	opps := api.Group("/opportunities")
	{
		opps.GET("/", h.listOpportunities)
		opps.POST("/", authn, h.createOpportunity)
		opps.GET("/my-applications", authn, h.myApplications)
		opps.POST("/:id/apply", authn, h.applyOpportunity)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		if c.Writer.Header().Get("Allow") == "" {
			if allowed := allowedMethods(r.Routes(), c.Request.URL.Path); len(allowed) > 0 {
				c.Header("Allow", strings.Join(allowed, ", "))
			}
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

// allowedMethods — методы зарегистрированных маршрутов, совпадающих с path.
func allowedMethods(routes gin.RoutesInfo, path string) []string {
	var out []string
	for _, rt := range routes {
		if matchRoute(rt.Path, path) && !slices.Contains(out, rt.Method) {
			out = append(out, rt.Method)
		}
	}
	return out
}

// matchRoute — сопоставление шаблона gin (":param", "*any") с путём запроса.
func matchRoute(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range ps {
		if strings.HasPrefix(p, "*") {
			return true
		}
		if i >= len(xs) {
			return false
		}
		if strings.HasPrefix(p, ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if p != xs[i] {
			return false
		}
	}
	return len(ps) == len(xs)
}
