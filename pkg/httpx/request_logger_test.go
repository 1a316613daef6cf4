package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Gunvolt24/oppify/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recLogger) Infof(_ context.Context, f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(f, a...))
}
func (l *recLogger) Warnf(context.Context, string, ...any)  {}
func (l *recLogger) Errorf(context.Context, string, ...any) {}

func TestRequestLogger_SkipsServicePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recLogger{}

	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/opportunities/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ping", "/api/v1/opportunities/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
	}

	if len(log.lines) != 1 {
		t.Fatalf("want 1 logged request, got %d: %v", len(log.lines), log.lines)
	}
}
