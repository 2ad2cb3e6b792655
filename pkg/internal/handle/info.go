package handle

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/log"
)

var (
	infoOnce sync.Once
	infoBody []byte
)

// buildInfoBody 用 sonic 预序列化静态的 API 描述，之后每次请求直接写出.
func buildInfoBody() {
	doc := types.InfoResponse{
		Service:     configs.AppName,
		Version:     configs.AppVersion,
		Description: "accepts a single uploaded file and returns its name, MIME type and size as JSON; file contents are never stored",
		Endpoints: []types.EndpointInfo{
			{Method: http.MethodPost, Path: "/api/fileanalyse", Description: "analyse a multipart upload in field \"upfile\""},
			{Method: http.MethodGet, Path: "/api/health", Description: "service status and upload limits"},
			{Method: http.MethodGet, Path: "/api/info", Description: "this document"},
			{Method: http.MethodGet, Path: "/api/test-upload-form", Description: "minimal HTML form for manual testing"},
		},
	}

	body, err := sonic.Marshal(doc)
	if err != nil {
		l := log.Logger()
		l.Error().Err(err).Msg("failed to marshal api info")

		return
	}

	infoBody = body
}

// Info 返回 API 表面的静态描述.
//
//	@Summary		API 信息
//	@Description	返回 API 端点的静态描述文档
//	@Tags			服务信息
//	@Produce		json
//	@Success		200	{object}	types.InfoResponse	"API 描述"
//	@Router			/api/info [get]
func Info(c *gin.Context) {
	infoOnce.Do(buildInfoBody)

	if infoBody == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": types.ErrInternal.Message})

		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", infoBody)
}
