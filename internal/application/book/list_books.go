package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/notice"
)

// ListBooksUseCase 查看全部图书用例
// 目录为空不是错误，返回info级别的提示
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksResponse 列表响应DTO
type ListBooksResponse struct {
	Books  []BookItem    `json:"books"`
	Total  int           `json:"total"`
	Notice notice.Notice `json:"notice"`
}

// Execute 执行列表用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	catalog, err := uc.bookService.ListBooks(ctx)
	if errors.Is(err, book.ErrCatalogEmpty) {
		return &ListBooksResponse{Books: []BookItem{}, Notice: notice.FromError(err)}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		Books: toBookItems(catalog),
		Total: catalog.Len(),
	}, nil
}
