package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/service"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/log"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/metrics"
)

// AnalyseFile 处理文件分析请求：解析 multipart 表单并返回文件元数据.
//
//	@Summary		分析上传文件
//	@Description	接收 multipart/form-data 中字段名为 upfile 的单个文件，返回其文件名、MIME 类型和字节大小，不存储文件内容
//	@Tags			文件分析
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			upfile	formData	file					true	"要分析的文件（最大 50MB）"
//	@Success		200		{object}	types.FileMetadata		"文件元数据"
//	@Failure		400		{object}	types.ErrorResponse		"请求不符合上传约束"
//	@Failure		500		{object}	types.ErrorResponse		"服务器内部错误"
//	@Router			/api/fileanalyse [post]
func AnalyseFile(c *gin.Context) {
	l := log.Logger()
	cfg := configs.GetConfig().Upload

	if err := c.Request.ParseMultipartForm(cfg.MaxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			l.Warn().Err(err).Int64("limit", cfg.MaxBodySize()).Msg("request body over size limit")
			respondAnalyseError(c, types.ErrFileTooLarge)

			return
		}

		// 非 multipart 请求或表单不完整，统一视为未提供文件
		l.Warn().Err(err).Msg("failed to parse multipart form")
		respondAnalyseError(c, types.ErrNoFileProvided)

		return
	}

	form := c.Request.MultipartForm
	defer func() {
		// 清理解析时可能落盘的临时文件
		_ = form.RemoveAll()
	}()

	svc := service.NewAnalyseService()

	meta, err := svc.Analyse(c.Request.Context(), form)
	if err != nil {
		l.Warn().Err(err).Msg("upload rejected")
		respondAnalyseError(c, err)

		return
	}

	metrics.FilesAnalyzed.WithLabelValues("ok").Inc()
	metrics.UploadSize.Observe(float64(meta.Size))

	l.Debug().
		Str("file_name", meta.Name).
		Str("content_type", meta.Type).
		Int64("size", meta.Size).
		Msg("file analysed")

	c.JSON(http.StatusOK, meta)
}

// respondAnalyseError 按错误类别返回固定的状态码和提示信息，并记录指标.
func respondAnalyseError(c *gin.Context, err error) {
	var analyseErr *types.AnalyseError
	if !errors.As(err, &analyseErr) {
		analyseErr = types.ErrInternal
	}

	metrics.FilesAnalyzed.WithLabelValues(analyseErr.Kind).Inc()
	c.JSON(analyseErr.Status, gin.H{"error": analyseErr.Message})
}
