// Package handle 新增健康检查处理器实现.
package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
)

// Health 服务健康检查，返回状态和当前生效的上传限制.
//
//	@Summary		健康检查
//	@Description	返回服务状态和当前生效的上传限制
//	@Tags			服务信息
//	@Produce		json
//	@Success		200	{object}	types.HealthResponse	"服务状态"
//	@Router			/api/health [get]
func Health(c *gin.Context) {
	cfg := configs.GetConfig().Upload

	c.JSON(http.StatusOK, types.HealthResponse{
		Status: "OK",
		Limits: types.UploadLimits{
			MaxFileSizeBytes: cfg.MaxFileSize,
			MaxFiles:         cfg.MaxFiles,
			FieldName:        cfg.FieldName,
		},
	})
}
