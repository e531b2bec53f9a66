package httpx

import (
	"time"

	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger: middleware логирования HTTP-запросов (кроме служебных эндпоинтов).
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		switch c.FullPath() {
		case "/metrics", "/ping", "/healthz":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		// request_id и trace_id логгер берёт из контекста сам.
		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		logf := log.Infof
		if c.Writer.Status() >= 500 {
			logf = log.Warnf
		}
		logf(
			c.Request.Context(),
			"request span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
