package book

import (
	"github.com/xiebiao/library/internal/domain/book"
)

// BookItem 图书DTO
type BookItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available string `json:"available"` // Yes | No
}

// toBookItem 领域实体 → DTO
func toBookItem(b book.Book) BookItem {
	return BookItem{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Available: b.Available.String(),
	}
}

// toBookItems 目录 → DTO列表（保持顺序，空目录返回空切片而不是nil）
func toBookItems(catalog book.Catalog) []BookItem {
	items := make([]BookItem, len(catalog))
	for i, b := range catalog {
		items[i] = toBookItem(b)
	}
	return items
}
