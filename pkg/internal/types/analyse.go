// Package types 定义 API 的请求与响应数据结构.
package types

// FileMetadata 单次上传解析出的文件元数据，随响应返回后即丢弃.
type FileMetadata struct {
	Name string `json:"name"` // 客户端提供的原始文件名（不可信）
	Type string `json:"type"` // MIME 类型，客户端声明或嗅探得到
	Size int64  `json:"size"` // 文件字节数
}

// UploadLimits 当前生效的上传限制.
type UploadLimits struct {
	MaxFileSizeBytes int64  `json:"max_file_size_bytes"` // 单个文件最大字节数
	MaxFiles         int    `json:"max_files"`           // 每个请求最多文件数
	FieldName        string `json:"field_name"`          // 要求的 multipart 字段名
}

// HealthResponse 健康检查响应.
type HealthResponse struct {
	Status string       `json:"status"`
	Limits UploadLimits `json:"limits"`
}

// ErrorResponse 错误响应.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EndpointInfo 单个端点的描述.
type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// InfoResponse /api/info 的静态响应.
type InfoResponse struct {
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []EndpointInfo `json:"endpoints"`
}

// NotFoundResponse /api 下未匹配路径的响应.
type NotFoundResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available_endpoints"`
}
