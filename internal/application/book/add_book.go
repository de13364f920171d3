package book

import (
	"context"
	"fmt"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/notice"
)

// AddBookUseCase 新增图书用例
// 设计说明:
// 1. 应用层只负责流程编排，业务规则（编号重复、字段为空）由领域层校验
// 2. 输入输出使用DTO，与HTTP层、命令行解耦
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建新增用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 新增请求DTO
type AddBookRequest struct {
	ID     string
	Title  string
	Author string
	Genre  string
}

// AddBookResponse 新增响应DTO
type AddBookResponse struct {
	Book   BookItem      `json:"book"`
	Notice notice.Notice `json:"notice"`
}

// Execute 执行新增用例
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*AddBookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.ID, req.Title, req.Author, req.Genre)
	if err != nil {
		return nil, err
	}

	return &AddBookResponse{
		Book:   toBookItem(b),
		Notice: notice.Success(fmt.Sprintf("图书《%s》添加成功", b.Title)),
	}, nil
}
