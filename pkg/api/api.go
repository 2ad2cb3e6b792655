// Package api 将路由组和兜底处理器绑定到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/handle"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/router"
)

// RegisterRoutes 注册全部路由到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine) *gin.Engine {
	e.GET("/", handle.Index)

	router.RegisterAnalyseRoutes(e.Group("/api"))
	router.RegisterSwaggerRoute(e)

	e.NoRoute(handle.NotFound)

	return e
}
