package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// FindBookUseCase 按编号查找图书用例
// 修改图书的第一步：先查出当前值，展示给操作员编辑
type FindBookUseCase struct {
	bookService book.Service
}

// NewFindBookUseCase 创建查找用例
func NewFindBookUseCase(bookService book.Service) *FindBookUseCase {
	return &FindBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行查找用例
func (uc *FindBookUseCase) Execute(ctx context.Context, id string) (*BookItem, error) {
	b, err := uc.bookService.FindBook(ctx, id)
	if err != nil {
		return nil, err
	}

	item := toBookItem(b)
	return &item, nil
}
