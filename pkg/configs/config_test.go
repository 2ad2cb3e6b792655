package configs_test

import (
	"testing"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
)

// TestInitConfigDefaults 没有配置文件时应使用默认值.
func TestInitConfigDefaults(t *testing.T) {
	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	cfg := configs.GetConfig()

	if cfg.Server.Port != configs.DefaultPort {
		t.Errorf("expected default port %d, got %d", configs.DefaultPort, cfg.Server.Port)
	}

	if cfg.Server.Host != configs.DefaultHost {
		t.Errorf("expected default host %q, got %q", configs.DefaultHost, cfg.Server.Host)
	}

	if cfg.Upload.MaxFileSize != configs.DefaultMaxFileSize {
		t.Errorf("expected default max file size %d, got %d", int64(configs.DefaultMaxFileSize), cfg.Upload.MaxFileSize)
	}

	if cfg.Upload.MaxFiles != configs.DefaultMaxFiles {
		t.Errorf("expected default max files %d, got %d", configs.DefaultMaxFiles, cfg.Upload.MaxFiles)
	}

	if cfg.Upload.FieldName != configs.DefaultFieldName {
		t.Errorf("expected default field name %q, got %q", configs.DefaultFieldName, cfg.Upload.FieldName)
	}

	if cfg.Log.Level != configs.DefaultLogLevel {
		t.Errorf("expected default log level %q, got %q", configs.DefaultLogLevel, cfg.Log.Level)
	}
}

// TestMaxBodySize 请求体上限应为文件上限加表单开销.
func TestMaxBodySize(t *testing.T) {
	u := configs.UploadConfig{MaxFileSize: 1024}

	want := int64(1024 + configs.DefaultBodyOverhead)
	if got := u.MaxBodySize(); got != want {
		t.Errorf("expected max body size %d, got %d", want, got)
	}
}
