// Package app 提供应用程序的初始化和配置功能.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/api"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/configs"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/log"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/metrics"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/middleware"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/rule"
	"github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/tracing"
)

type App struct {
	Engine *gin.Engine
	config *configs.AppConfig
}

func NewApp(configPath string) *App {
	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	// 校验配置
	if err := rule.ValidateStruct(config); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志，logger 初始化时同时设置 gin 的运行模式
	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
	)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	api.RegisterRoutes(engine)

	return &App{
		Engine: engine,
		config: config,
	}
}

// Run 启动 HTTP 服务器并阻塞，收到 SIGINT/SIGTERM 时优雅下线.
func (a *App) Run() error {
	l := log.Logger()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler: a.Engine,
		// 上传请求体可能传输较慢，只限制头部读取
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info().Str("addr", srv.Addr).Msg("starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		l.Info().Msg("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.GetTimeoutDuration())
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return tracing.ShutdownTracer(shutdownCtx)
	})

	return g.Wait()
}
