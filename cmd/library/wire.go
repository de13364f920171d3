//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改依赖关系后运行 `wire gen ./cmd/library` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	"github.com/xiebiao/library/internal/infrastructure/persistence/csvfile"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 基础设施层：日志、CSV数据文件
var infrastructureSet = wire.NewSet(
	logger.New,
	csvfile.NewBookRepository,
	csvfile.NewCodec,
	wire.Bind(new(appbook.CatalogEncoder), new(*csvfile.Codec)),
)

// domainSet 领域层
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层：每个目录操作一个用例
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewFindBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewExportBooksUseCase,
)

// interfaceSet 接口层：处理器和路由
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewPageHandler,
	router.New,
)

// InitializeApp 组装整个应用
// cleanup关闭日志输出文件（输出到stdout/stderr时为空操作）
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
