package handle_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/api"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/internal/types"
)

// setupRouter 构建测试用的 gin 引擎并初始化默认配置.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if err := configs.InitConfig("./"); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	engine := gin.New()

	return api.RegisterRoutes(engine)
}

// filePart 单个文件 part 的描述.
type filePart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// buildMultipartBody 构造 multipart/form-data 请求体.
func buildMultipartBody(t *testing.T, parts []filePart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.filename))

		if p.contentType != "" {
			header.Set("Content-Type", p.contentType)
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("CreatePart failed: %v", err)
		}

		if _, err := part.Write(p.content); err != nil {
			t.Fatalf("writing part failed: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	return &buf, writer.FormDataContentType()
}

// postUpload 发送上传请求并返回 recorder.
func postUpload(t *testing.T, engine *gin.Engine, parts []filePart) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := buildMultipartBody(t, parts)

	req := httptest.NewRequest(http.MethodPost, "/api/fileanalyse", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec
}

// decodeError 解析错误响应体.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response %q: %v", rec.Body.String(), err)
	}

	return resp.Error
}

// TestAnalyseFile 上传已知文件应返回其名称、类型和大小.
func TestAnalyseFile(t *testing.T) {
	engine := setupRouter(t)

	content := []byte("hello metadata service")
	rec := postUpload(t, engine, []filePart{
		{field: "upfile", filename: "hello.txt", contentType: "text/plain", content: content},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var meta types.FileMetadata
	if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if meta.Name != "hello.txt" {
		t.Errorf("expected name hello.txt, got %q", meta.Name)
	}

	if meta.Type != "text/plain" {
		t.Errorf("expected type text/plain, got %q", meta.Type)
	}

	if meta.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), meta.Size)
	}
}

// TestAnalyseFileSniffsContentType part 未声明 Content-Type 时应嗅探类型.
func TestAnalyseFileSniffsContentType(t *testing.T) {
	engine := setupRouter(t)

	// PNG 文件头
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	rec := postUpload(t, engine, []filePart{
		{field: "upfile", filename: "pixel.png", content: png},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var meta types.FileMetadata
	if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if meta.Type != "image/png" {
		t.Errorf("expected sniffed type image/png, got %q", meta.Type)
	}
}

// TestAnalyseFileNoFile 缺少文件时应返回 400 及固定提示.
func TestAnalyseFileNoFile(t *testing.T) {
	engine := setupRouter(t)

	rec := postUpload(t, engine, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrNoFileProvided.Message {
		t.Errorf("expected NoFileProvided message, got %q", msg)
	}
}

// TestAnalyseFileNotMultipart 非 multipart 请求同样视为未提供文件.
func TestAnalyseFileNotMultipart(t *testing.T) {
	engine := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/fileanalyse", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrNoFileProvided.Message {
		t.Errorf("expected NoFileProvided message, got %q", msg)
	}
}

// TestAnalyseFileWrongField 字段名不是 upfile 时应返回 400 及固定提示.
func TestAnalyseFileWrongField(t *testing.T) {
	engine := setupRouter(t)

	rec := postUpload(t, engine, []filePart{
		{field: "file", filename: "hello.txt", contentType: "text/plain", content: []byte("hi")},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrUnexpectedFieldName.Message {
		t.Errorf("expected UnexpectedFieldName message, got %q", msg)
	}
}

// TestAnalyseFileTooManyFiles 一个请求携带多个文件时应返回 400 及固定提示.
func TestAnalyseFileTooManyFiles(t *testing.T) {
	engine := setupRouter(t)

	rec := postUpload(t, engine, []filePart{
		{field: "upfile", filename: "a.txt", contentType: "text/plain", content: []byte("a")},
		{field: "upfile", filename: "b.txt", contentType: "text/plain", content: []byte("b")},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrTooManyFiles.Message {
		t.Errorf("expected TooManyFiles message, got %q", msg)
	}
}

// TestAnalyseFileRejectsOversizedBody 请求体超过整体上限时应在解析阶段
// 被 MaxBytesReader 截断，同样映射为 FileTooLarge，而不是缓冲完整请求体
// 后才检查文件大小.
func TestAnalyseFileRejectsOversizedBody(t *testing.T) {
	engine := setupRouter(t)

	cfg := configs.GetConfig()
	original := cfg.Upload.MaxFileSize
	cfg.Upload.MaxFileSize = 1024

	t.Cleanup(func() {
		cfg.Upload.MaxFileSize = original
	})

	// 请求体明显超过 MaxBodySize（文件上限加表单开销）
	content := bytes.Repeat([]byte{0xab}, int(cfg.Upload.MaxBodySize())+(1<<20))
	rec := postUpload(t, engine, []filePart{
		{field: "upfile", filename: "huge.bin", contentType: "application/octet-stream", content: content},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrFileTooLarge.Message {
		t.Errorf("expected FileTooLarge message, got %q", msg)
	}
}

// TestAnalyseFileTooLarge 文件超过配置上限时应返回 400 及固定提示.
func TestAnalyseFileTooLarge(t *testing.T) {
	engine := setupRouter(t)

	cfg := configs.GetConfig()
	original := cfg.Upload.MaxFileSize
	cfg.Upload.MaxFileSize = 16

	t.Cleanup(func() {
		cfg.Upload.MaxFileSize = original
	})

	rec := postUpload(t, engine, []filePart{
		{field: "upfile", filename: "big.bin", contentType: "application/zip", content: bytes.Repeat([]byte{0xff}, 64)},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	if msg := decodeError(t, rec); msg != types.ErrFileTooLarge.Message {
		t.Errorf("expected FileTooLarge message, got %q", msg)
	}
}
