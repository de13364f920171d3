package book

import (
	"context"
	"errors"
	"io"

	"github.com/xiebiao/library/internal/domain/book"
)

// CatalogEncoder 目录编码器（由存储层的CSV编解码实现）
type CatalogEncoder interface {
	Encode(w io.Writer, catalog book.Catalog) error
}

// ExportBooksUseCase 导出全部图书用例
// 导出格式与存储文件一致（带表头的CSV），空目录只导出表头
type ExportBooksUseCase struct {
	bookService book.Service
	encoder     CatalogEncoder
}

// NewExportBooksUseCase 创建导出用例
func NewExportBooksUseCase(bookService book.Service, encoder CatalogEncoder) *ExportBooksUseCase {
	return &ExportBooksUseCase{
		bookService: bookService,
		encoder:     encoder,
	}
}

// Execute 执行导出用例
func (uc *ExportBooksUseCase) Execute(ctx context.Context, w io.Writer) error {
	catalog, err := uc.bookService.ListBooks(ctx)
	if err != nil && !errors.Is(err, book.ErrCatalogEmpty) {
		return err
	}
	return uc.encoder.Encode(w, catalog)
}
