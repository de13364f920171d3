package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/notice"
)

// SearchBooksUseCase 搜索图书用例
// 目录为空和没有匹配结果是两种不同的提示
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Field string // Title | Author（大小写不敏感）
	Term  string // 关键词，为空时匹配全部
}

// SearchBooksResponse 搜索响应DTO
type SearchBooksResponse struct {
	Field  string        `json:"field"`
	Term   string        `json:"term"`
	Books  []BookItem    `json:"books"`
	Total  int           `json:"total"`
	Notice notice.Notice `json:"notice"`
}

// Execute 执行搜索用例
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*SearchBooksResponse, error) {
	field, err := book.ParseSearchField(req.Field)
	if err != nil {
		return nil, err
	}

	resp := &SearchBooksResponse{Field: string(field), Term: req.Term, Books: []BookItem{}}

	results, err := uc.bookService.SearchBooks(ctx, field, req.Term)
	if errors.Is(err, book.ErrCatalogEmpty) || errors.Is(err, book.ErrNoResults) {
		resp.Notice = notice.FromError(err)
		return resp, nil
	}
	if err != nil {
		return nil, err
	}

	resp.Books = toBookItems(results)
	resp.Total = results.Len()
	return resp, nil
}
