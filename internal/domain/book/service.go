package book

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 每个方法都是一次完整的"整表加载 → 操作 → 整表写回"
// 2. 方法之间不保留任何状态（修改前先Find是展示层的两步流程，这里每次都重新校验）
// 3. 操作失败时不写回，存储保持操作前的状态
type Service interface {
	// Initialize 确保存储存在（进程启动时调用，可重复调用）
	Initialize(ctx context.Context) error

	// AddBook 新增图书，默认可借
	AddBook(ctx context.Context, id, title, author, genre string) (Book, error)

	// ListBooks 列出全部图书，目录为空时返回ErrCatalogEmpty
	ListBooks(ctx context.Context) (Catalog, error)

	// SearchBooks 按书名或作者搜索
	SearchBooks(ctx context.Context, field SearchField, term string) (Catalog, error)

	// FindBook 按编号查找
	FindBook(ctx context.Context, id string) (Book, error)

	// UpdateBook 覆盖四个可修改字段
	UpdateBook(ctx context.Context, id, title, author, genre string, available Availability) (Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id string) error
}

// service 领域服务实现
// mu保证同一时刻只有一个操作在读写数据文件：
// HTTP服务每个请求一个goroutine，不加锁时并发的整表写回会互相覆盖，
// 读操作也可能读到另一个请求截断到一半的文件
type service struct {
	mu     sync.Mutex
	repo   Repository
	logger *slog.Logger
}

// NewService 创建图书领域服务
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Initialize 确保存储存在
func (s *service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Initialize(ctx); err != nil {
		s.logger.ErrorContext(ctx, "初始化图书数据文件失败", "err", err)
		return err
	}
	return nil
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, id, title, author, genre string) (b Book, err error) {
	ctx, done := s.begin(ctx, "add", id)
	defer func() { done(err) }()

	// 1. 加载目录
	catalog, err := s.load(ctx)
	if err != nil {
		return Book{}, err
	}

	// 2. 业务规则校验并追加
	catalog, b, err = catalog.Add(id, title, author, genre)
	if err != nil {
		return Book{}, err
	}

	// 3. 写回
	if err = s.repo.Save(ctx, catalog); err != nil {
		return Book{}, err
	}

	s.logger.InfoContext(ctx, "图书已添加", "book_id", b.ID, "title", b.Title)
	return b, nil
}

// ListBooks 列出全部图书
func (s *service) ListBooks(ctx context.Context) (books Catalog, err error) {
	ctx, done := s.begin(ctx, "list", "")
	defer func() { done(err) }()

	catalog, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.List()
}

// SearchBooks 按书名或作者搜索
func (s *service) SearchBooks(ctx context.Context, field SearchField, term string) (books Catalog, err error) {
	ctx, done := s.begin(ctx, "search", "")
	defer func() { done(err) }()

	catalog, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Search(field, term)
}

// FindBook 按编号查找
func (s *service) FindBook(ctx context.Context, id string) (b Book, err error) {
	ctx, done := s.begin(ctx, "find", id)
	defer func() { done(err) }()

	catalog, err := s.load(ctx)
	if err != nil {
		return Book{}, err
	}
	return catalog.Find(id)
}

// UpdateBook 修改图书
// 写入前重新加载并校验图书是否存在（两次提交之间图书可能已被删除）
func (s *service) UpdateBook(ctx context.Context, id, title, author, genre string, available Availability) (b Book, err error) {
	ctx, done := s.begin(ctx, "update", id)
	defer func() { done(err) }()

	catalog, err := s.load(ctx)
	if err != nil {
		return Book{}, err
	}

	catalog, b, err = catalog.Update(id, title, author, genre, available)
	if err != nil {
		return Book{}, err
	}

	if err = s.repo.Save(ctx, catalog); err != nil {
		return Book{}, err
	}

	s.logger.InfoContext(ctx, "图书已修改", "book_id", b.ID, "available", b.Available)
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id string) (err error) {
	ctx, done := s.begin(ctx, "delete", id)
	defer func() { done(err) }()

	catalog, err := s.load(ctx)
	if err != nil {
		return err
	}

	catalog, err = catalog.Delete(id)
	if err != nil {
		return err
	}

	if err = s.repo.Save(ctx, catalog); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "图书已删除", "book_id", id)
	return nil
}

// =========================================
// 辅助函数
// =========================================

// load 加载目录并记录图书数量
func (s *service) load(ctx context.Context) (Catalog, error) {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	metrics.SetCatalogBooks(catalog.Len())
	return catalog, nil
}

// begin 开始一次目录操作：加锁并创建Span，返回结束时调用的回调
// 锁覆盖整个"加载 → 操作 → 写回"过程，回调负责解锁并记录指标、日志和Span状态
func (s *service) begin(ctx context.Context, operation, id string) (context.Context, func(error)) {
	s.mu.Lock()
	ctx, span := tracing.StartSpan(ctx, tracerName, "catalog."+operation)

	return ctx, func(err error) {
		defer s.mu.Unlock()

		informational := apperrors.IsInformational(err)

		result := "success"
		switch {
		case err == nil:
		case informational:
			result = "info"
		default:
			result = "error"
			level := slog.LevelWarn
			if apperrors.IsServerError(err) {
				level = slog.LevelError
			}
			s.logger.Log(ctx, level, "目录操作失败", "operation", operation, "book_id", id, "err", err)
		}

		metrics.RecordCatalogOperation(operation, result)
		tracing.EndSpan(span, err, informational)
	}
}
