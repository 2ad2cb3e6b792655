package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 使用的 HTTP 头.
const RequestIDHeader = "X-Request-ID"

// requestIDKey gin context 中存放请求 ID 的键.
const requestIDKey = "request_id"

// RequestIDMiddleware 为每个请求分配 uuid 请求 ID，客户端已携带时沿用.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// RequestIDFromContext 返回当前请求的请求 ID，未设置时返回空字符串.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
