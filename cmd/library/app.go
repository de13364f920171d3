package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/config"
)

// App 进程内的全部依赖
// HTTP服务使用Engine，命令行子命令直接调用用例
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service book.Service
	Engine  *gin.Engine

	AddBook     *appbook.AddBookUseCase
	ListBooks   *appbook.ListBooksUseCase
	SearchBooks *appbook.SearchBooksUseCase
	FindBook    *appbook.FindBookUseCase
	UpdateBook  *appbook.UpdateBookUseCase
	DeleteBook  *appbook.DeleteBookUseCase
	ExportBooks *appbook.ExportBooksUseCase
}

// bootstrap 加载配置、组装依赖并确保数据文件存在
// 返回的cleanup负责关闭日志文件等资源
func bootstrap(ctx context.Context, configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := app.Service.Initialize(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return app, cleanup, nil
}
