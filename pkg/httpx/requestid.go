package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/eventbus/pkg/ctxmeta"
)

const maxRequestIDLen = 128

// RequestIDMiddleware берёт X-Request-ID клиента (если он приемлем) или генерирует UUID,
// кладёт его в контекст запроса и возвращает в ответе. Дальше он едет в заголовки
// публикуемых записей.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ctxmeta.HeaderRequestID)
		if !acceptableRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(ctxmeta.HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// acceptableRequestID: непустой, ограниченной длины, только печатный ASCII без пробелов.
func acceptableRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
