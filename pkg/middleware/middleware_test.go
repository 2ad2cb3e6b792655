package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/middleware"
)

// TestRequestIDMiddleware 每个请求应分配请求 ID 并写入响应头.
func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.RequestIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	id := rec.Header().Get(middleware.RequestIDHeader)
	if id == "" {
		t.Fatal("expected a request id header")
	}

	if rec.Body.String() != id {
		t.Errorf("context id %q should match header id %q", rec.Body.String(), id)
	}
}

// TestRequestIDMiddlewarePreservesClientID 客户端携带的请求 ID 应被沿用.
func TestRequestIDMiddlewarePreservesClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-123")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "client-id-123" {
		t.Errorf("expected client id to be preserved, got %q", got)
	}
}

// TestBodyLimitMiddleware 超过限制的请求体读取时应返回 MaxBytesError.
func TestBodyLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limit := int64(8)

	engine := gin.New()
	engine.Use(middleware.BodyLimitMiddleware(func() int64 { return limit }))
	engine.POST("/", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.Status(http.StatusRequestEntityTooLarge)

			return
		}

		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413 from limited body, got %d", rec.Code)
	}

	// 限制内的请求体不受影响
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok"))
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for small body, got %d", rec.Code)
	}

	// 修改上限后，下一个请求立即生效
	limit = 1

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok"))
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413 after lowering the limit, got %d", rec.Code)
	}
}
