package csvfile

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/store"

// bookRepository 图书仓储实现(CSV文件)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 每次Load整表读取，每次Save整表覆盖写回，不缓存
// 3. 文件系统通过afero注入：生产用OsFs，测试用MemMapFs
// 4. 写入不是原子的：写到一半进程崩溃可能导致文件截断，单人单进程使用下接受这个限制
type bookRepository struct {
	fs     afero.Fs
	path   string
	codec  *Codec
	logger *slog.Logger
}

// NewBookRepository 创建图书仓储（本地文件系统）
func NewBookRepository(cfg *config.Config, logger *slog.Logger) book.Repository {
	return NewStore(afero.NewOsFs(), cfg.Store.Path, logger)
}

// NewStore 在指定文件系统上创建图书仓储
func NewStore(fs afero.Fs, path string, logger *slog.Logger) book.Repository {
	return &bookRepository{
		fs:     fs,
		path:   path,
		codec:  NewCodec(),
		logger: logger,
	}
}

// Initialize 存储文件不存在时创建只有表头的空文件
func (r *bookRepository) Initialize(ctx context.Context) (err error) {
	defer r.observe(ctx, "initialize")(&err)

	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "检查图书数据文件失败")
	}
	if exists {
		return nil
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "创建图书数据目录失败")
		}
	}
	if err := r.write(book.Catalog{}); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "已创建图书数据文件", "path", r.path)
	return nil
}

// Load 读取全部图书
// 文件不存在时返回空目录；其他读取错误一律返回，不当作空目录处理
func (r *bookRepository) Load(ctx context.Context) (catalog book.Catalog, err error) {
	defer r.observe(ctx, "load")(&err)

	f, err := r.fs.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.Catalog{}, nil
	}
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "读取图书数据失败")
	}
	defer f.Close()

	return r.codec.Decode(f)
}

// Save 覆盖写回全部图书
func (r *bookRepository) Save(ctx context.Context, catalog book.Catalog) (err error) {
	defer r.observe(ctx, "save")(&err)

	return r.write(catalog)
}

// write 截断并写入整个文件
func (r *bookRepository) write(catalog book.Catalog) error {
	f, err := r.fs.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "写入图书数据失败")
	}

	if err := r.codec.Encode(f, catalog); err != nil {
		_ = f.Close()
		return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "写入图书数据失败")
	}
	if err := f.Close(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, "写入图书数据失败")
	}
	return nil
}

// observe 记录一次存储读写的耗时、Span和调试日志
// 用法：defer r.observe(ctx, "load")(&err)
func (r *bookRepository) observe(ctx context.Context, operation string) func(*error) {
	start := time.Now()
	_, span := tracing.StartSpan(ctx, tracerName, "store."+operation)

	return func(errp *error) {
		err := *errp
		metrics.ObserveStoreOperation(operation, time.Since(start).Seconds(), err)
		tracing.EndSpan(span, err, false)
		r.logger.DebugContext(ctx, "图书数据文件读写", "operation", operation, "path", r.path, "latency", logger.Since(start), "err", err)
	}
}
