package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/eventbus/pkg/httpx"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *captureLogger) Debugf(_ context.Context, f string, a ...any) { l.add("debug", f, a...) }
func (l *captureLogger) Infof(_ context.Context, f string, a ...any)  { l.add("info", f, a...) }
func (l *captureLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("warn", f, a...) }
func (l *captureLogger) Errorf(_ context.Context, f string, a ...any) { l.add("error", f, a...) }

func TestRequestLogger_SkipsServiceEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &captureLogger{}

	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	for _, p := range []string{"/ping", "/metrics", "/healthz"} {
		r.GET(p, func(c *gin.Context) { c.Status(http.StatusOK) })
	}
	r.GET("/v1/poison", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, p := range []string{"/ping", "/metrics", "/healthz", "/v1/poison", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}

	if len(log.lines) != 2 {
		t.Fatalf("want 2 log lines, got %d: %v", len(log.lines), log.lines)
	}
	if got := log.lines[0]; got[:4] != "info" {
		t.Fatalf("2xx must log at info: %q", got)
	}
	if got := log.lines[1]; got[:4] != "warn" {
		t.Fatalf("5xx must log at warn: %q", got)
	}
}
