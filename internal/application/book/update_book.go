package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/notice"
)

// UpdateBookUseCase 修改图书用例
// 设计说明:
// 1. 修改是两次独立调用：FindBookUseCase查出当前值，本用例提交新值
// 2. 两次调用之间不保存任何会话状态，提交时领域层会重新校验图书是否存在
// 3. 书名、作者、类别允许为空（与新增不同）；借阅状态必须是Yes或No
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 修改请求DTO
type UpdateBookRequest struct {
	ID        string
	Title     string
	Author    string
	Genre     string
	Available string // Yes | No
}

// UpdateBookResponse 修改响应DTO
type UpdateBookResponse struct {
	Book   BookItem      `json:"book"`
	Notice notice.Notice `json:"notice"`
}

// Execute 执行修改用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*UpdateBookResponse, error) {
	available, err := book.ParseAvailability(req.Available)
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.UpdateBook(ctx, req.ID, req.Title, req.Author, req.Genre, available)
	if err != nil {
		return nil, err
	}

	return &UpdateBookResponse{
		Book:   toBookItem(b),
		Notice: notice.Success("图书信息修改成功"),
	}, nil
}
