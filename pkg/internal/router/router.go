// Package router 管理路由配置，将路径绑定到 handle 包提供的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/handle"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/middleware"
)

// RegisterAnalyseRoutes 注册文件分析及信息相关路由.
// 绑定的路径（上层传入 api := e.Group("/api")）：
//
//	POST /fileanalyse      -> AnalyseFile（带请求体大小限制）
//	GET  /health           -> Health
//	GET  /info             -> Info
//	GET  /test-upload-form -> TestUploadForm
func RegisterAnalyseRoutes(g *gin.RouterGroup) {
	// 每个请求读取当前配置，与 service 层的大小检查保持一致
	maxBodySize := func() int64 {
		return configs.GetConfig().Upload.MaxBodySize()
	}

	g.POST("/fileanalyse",
		middleware.BodyLimitMiddleware(maxBodySize),
		handle.AnalyseFile,
	)
	g.GET("/health", handle.Health)
	g.GET("/info", handle.Info)
	g.GET("/test-upload-form", handle.TestUploadForm)
}
