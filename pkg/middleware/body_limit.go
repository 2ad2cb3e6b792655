package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 用 http.MaxBytesReader 限制请求体大小.
// limit 在每个请求上调用，配置热重载后新请求立即采用新上限.
// 超限时后续读取会得到 *http.MaxBytesError，multipart 解析随之失败，
// 从而在完整缓冲请求体之前拒绝超大上传.
func BodyLimitMiddleware(limit func() int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n := limit(); n > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}

		c.Next()
	}
}
