// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
)

// availableEndpoints /api 下全部有效端点，404 响应中返回.
var availableEndpoints = []string{
	"POST /api/fileanalyse",
	"GET /api/health",
	"GET /api/info",
	"GET /api/test-upload-form",
}

// NotFound 处理未匹配的路径：/api 下返回端点列表，其余路径返回普通 404.
func NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
		c.JSON(http.StatusNotFound, types.NotFoundResponse{
			Error:     "endpoint not found",
			Available: availableEndpoints,
		})

		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
