package dto

import appbook "github.com/xiebiao/library/internal/application/book"

// AddBookRequest 新增图书请求
// 不使用binding:"required"：字段为空与编号重复的校验顺序由领域层决定
type AddBookRequest struct {
	ID     string `json:"id" form:"id" example:"B001"`
	Title  string `json:"title" form:"title" example:"Dune"`
	Author string `json:"author" form:"author" example:"Frank Herbert"`
	Genre  string `json:"genre" form:"genre" example:"Science Fiction"`
}

// UpdateBookRequest 修改图书请求
// HTML表单的编号来自隐藏字段，JSON接口的编号来自路径参数
type UpdateBookRequest struct {
	ID        string `json:"-" form:"id"`
	Title     string `json:"title" form:"title" example:"Dune Messiah"`
	Author    string `json:"author" form:"author" example:"Frank Herbert"`
	Genre     string `json:"genre" form:"genre" example:"Science Fiction"`
	Available string `json:"available" form:"available" example:"No" enums:"Yes,No"`
}

// SearchBooksRequest 搜索请求
type SearchBooksRequest struct {
	Field string `form:"field" example:"Title" enums:"Title,Author"`
	Query string `form:"q" example:"dune"`
}

// DeleteBookRequest HTML删除表单
type DeleteBookRequest struct {
	ID string `form:"id"`
}

// BookResponse 图书响应
type BookResponse struct {
	ID        string `json:"id" example:"B001"`
	Title     string `json:"title" example:"Dune"`
	Author    string `json:"author" example:"Frank Herbert"`
	Genre     string `json:"genre" example:"Science Fiction"`
	Available string `json:"available" example:"Yes"`
}

// ListBooksResponse 图书列表响应
type ListBooksResponse struct {
	List  []BookResponse `json:"list"`
	Total int            `json:"total" example:"2"`
}

// NewBookResponse 应用层DTO → HTTP响应
func NewBookResponse(item appbook.BookItem) BookResponse {
	return BookResponse{
		ID:        item.ID,
		Title:     item.Title,
		Author:    item.Author,
		Genre:     item.Genre,
		Available: item.Available,
	}
}

// NewListBooksResponse 列表转换，空列表序列化为[]而不是null
func NewListBooksResponse(items []appbook.BookItem) ListBooksResponse {
	list := make([]BookResponse, 0, len(items))
	for _, item := range items {
		list = append(list, NewBookResponse(item))
	}
	return ListBooksResponse{List: list, Total: len(list)}
}
