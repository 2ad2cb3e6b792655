package types

import "net/http"

// AnalyseError 上传解析失败的终态错误，每种错误对应固定的 HTTP 状态码和提示信息.
type AnalyseError struct {
	Kind    string // 错误类别，作为指标标签
	Status  int    // HTTP 状态码
	Message string // 返回给调用方的固定提示
}

func (e *AnalyseError) Error() string {
	return e.Message
}

// 上传解析的全部错误类别.
var (
	// ErrNoFileProvided 请求中没有文件.
	ErrNoFileProvided = &AnalyseError{
		Kind:    "NoFileProvided",
		Status:  http.StatusBadRequest,
		Message: "no file provided: expected multipart/form-data with a single file field \"upfile\"",
	}

	// ErrFileTooLarge 文件超过大小上限.
	ErrFileTooLarge = &AnalyseError{
		Kind:    "FileTooLarge",
		Status:  http.StatusBadRequest,
		Message: "file too large: the file exceeds the configured size limit, see /api/health for the current limits",
	}

	// ErrTooManyFiles 请求包含多个文件.
	ErrTooManyFiles = &AnalyseError{
		Kind:    "TooManyFiles",
		Status:  http.StatusBadRequest,
		Message: "too many files: exactly one file is allowed per request",
	}

	// ErrUnexpectedFieldName 文件字段名不是要求的字段名.
	ErrUnexpectedFieldName = &AnalyseError{
		Kind:    "UnexpectedFieldName",
		Status:  http.StatusBadRequest,
		Message: "unexpected field name: the file must be sent in the field \"upfile\"",
	}

	// ErrInternal 未预期的内部错误.
	ErrInternal = &AnalyseError{
		Kind:    "InternalError",
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
	}
)
