// Package configs 管理应用程序配置，包括上传限制的配置信息.
// 上传限制决定 /api/fileanalyse 对 multipart 请求的约束.
//
// Example:
//
//	config := configs.GetConfig()
//	uploadConfig := config.Upload
//	fmt.Println("Field name:", uploadConfig.FieldName)
package configs

import (
	"github.com/spf13/viper"
)

const (
	// DefaultMaxFileSize 默认单个文件最大字节数（50 MiB）.
	DefaultMaxFileSize = 50 << 20
	// DefaultMaxFiles 默认每个请求最多文件数.
	DefaultMaxFiles = 1
	// DefaultFieldName 默认的 multipart 文件字段名.
	DefaultFieldName = "upfile"
	// DefaultMaxMemory 解析 multipart 表单时保留在内存中的最大字节数，
	// 超出部分由 net/http 写入临时文件并在请求结束时删除.
	DefaultMaxMemory = 32 << 20
	// DefaultBodyOverhead 请求体上限在文件大小之外预留的表单开销（1 MiB）.
	DefaultBodyOverhead = 1 << 20
)

type (
	// UploadConfig 上传限制配置.
	UploadConfig struct {
		MaxFileSize int64  `mapstructure:"max_file_size" rule:"min=1"`        // 单个文件最大字节数
		MaxFiles    int    `mapstructure:"max_files"     rule:"min=1"`        // 每个请求最多文件数
		FieldName   string `mapstructure:"field_name"    rule:"required"`     // multipart 文件字段名
		MaxMemory   int64  `mapstructure:"max_memory"    rule:"min=1"`        // multipart 解析内存阈值
	}
)

// MaxBodySize 返回整个请求体的字节上限（文件大小上限加表单开销）.
func (u *UploadConfig) MaxBodySize() int64 {
	return u.MaxFileSize + DefaultBodyOverhead
}

// setDefaults 设置上传限制配置的默认值.
func (u *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.max_file_size", DefaultMaxFileSize)
	v.SetDefault("upload.max_files", DefaultMaxFiles)
	v.SetDefault("upload.field_name", DefaultFieldName)
	v.SetDefault("upload.max_memory", DefaultMaxMemory)
}
