package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiebiao/library/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务（表单页面 + JSON接口）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, cleanup, err := bootstrap(ctx, opts.configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			return serve(ctx, app)
		},
	}
}

// serve 运行HTTP服务直到ctx结束，然后优雅关闭
func serve(ctx context.Context, app *App) error {
	cfg := app.Config
	log := app.Logger

	// 1. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			return fmt.Errorf("初始化链路追踪失败: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				log.Warn("关闭链路追踪失败", "err", err)
			}
		}()
		log.Info("链路追踪已启用", "endpoint", cfg.Tracing.Endpoint)
	}

	// 2. HTTP服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动成功",
			"addr", srv.Addr,
			"store", cfg.Store.Path,
			"pages", "http://localhost"+srv.Addr+"/books",
			"swagger", "http://localhost"+srv.Addr+"/swagger/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 3. 等待退出信号
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP服务器启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("正在优雅关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}
	log.Info("服务已关闭")
	return nil
}
