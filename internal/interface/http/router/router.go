// Package router 组装gin引擎：中间件、页面路由、JSON接口和运维端点
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/library/docs" // 注册Swagger文档
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/internal/interface/http/web"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// New 创建并配置gin引擎
// 中间件执行顺序：Metrics → Logger → Recovery → 路由匹配 → Handler
func New(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	pageHandler *handler.PageHandler,
	logger *slog.Logger,
) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Tracing())
	r.Use(gin.Recovery())

	// 运维端点
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML表单页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/books/add")
	})
	pages := r.Group("/books")
	{
		pages.GET("", pageHandler.ListBooks)
		pages.GET("/add", pageHandler.AddForm)
		pages.POST("/add", pageHandler.AddBook)
		pages.GET("/search", pageHandler.SearchBooks)
		pages.GET("/update", pageHandler.UpdateForm)
		pages.POST("/update", pageHandler.UpdateBook)
		pages.GET("/delete", pageHandler.DeleteForm)
		pages.POST("/delete", pageHandler.DeleteBook)
		pages.GET("/export", pageHandler.ExportBooks)
	}

	// JSON接口
	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.AddBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}
	}

	return r, nil
}
