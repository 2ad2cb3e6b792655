// Package service 实现上传请求的元数据提取逻辑.
package service

import (
	"context"
	"mime"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/log"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/tracing"
)

// AnalyseService 从解析后的 multipart 表单中提取文件元数据.
// 文件内容只在请求期间驻留内存，服务不做任何持久化.
type AnalyseService struct {
	cfg configs.UploadConfig
}

// NewAnalyseService 创建 AnalyseService，使用当前生效的上传限制.
func NewAnalyseService() *AnalyseService {
	return &AnalyseService{cfg: configs.GetConfig().Upload}
}

// Analyse 校验表单约束并返回文件元数据.
// 校验顺序：是否有文件 -> 文件数量 -> 字段名 -> 文件大小.
// 约束不满足时返回 types 包中对应的 *AnalyseError.
func (s *AnalyseService) Analyse(ctx context.Context, form *multipart.Form) (*types.FileMetadata, error) {
	_, span := tracing.StartSpan(ctx, "analyse.file")
	defer span.End()

	total := 0
	for _, headers := range form.File {
		total += len(headers)
	}

	if total == 0 {
		return nil, types.ErrNoFileProvided
	}

	if total > s.cfg.MaxFiles {
		return nil, types.ErrTooManyFiles
	}

	headers := form.File[s.cfg.FieldName]
	if len(headers) == 0 {
		return nil, types.ErrUnexpectedFieldName
	}

	header := headers[0]
	if header.Size > s.cfg.MaxFileSize {
		return nil, types.ErrFileTooLarge
	}

	contentType, err := s.resolveContentType(header)
	if err != nil {
		l := log.Logger()
		l.Error().Err(err).Str("file_name", header.Filename).Msg("failed to resolve content type")

		return nil, types.ErrInternal
	}

	return &types.FileMetadata{
		Name: header.Filename,
		Type: contentType,
		Size: header.Size,
	}, nil
}

// resolveContentType 确定文件的 MIME 类型：优先使用客户端声明的
// Content-Type；缺失或为通用的 application/octet-stream 时，嗅探文件
// 开头的字节.
func (s *AnalyseService) resolveContentType(header *multipart.FileHeader) (string, error) {
	declared := header.Header.Get("Content-Type")
	if declared != "" {
		// 去掉 charset 等参数后判断是否为通用类型
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return declared, nil
		}
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	// DetectReader 只读取嗅探所需的开头字节
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}

	return detected.String(), nil
}
