package book

import (
	"strings"
)

// Availability 借阅状态
// 存储文件中原样保存为文本"Yes"/"No"，不是布尔值
type Availability string

const (
	Available   Availability = "Yes"
	Unavailable Availability = "No"
)

// ParseAvailability 解析借阅状态（大小写不敏感）
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Available, nil
	case "no":
		return Unavailable, nil
	default:
		return "", ErrInvalidAvailability
	}
}

func (a Availability) String() string {
	return string(a)
}

// Book 图书实体
// 设计说明:
// 1. ID由操作员录入，不自动生成，始终按文本处理（"007"和"7"是两本不同的书）
// 2. 除ID外的四个字段都可以通过Update修改
type Book struct {
	ID        string       // 图书编号
	Title     string       // 书名
	Author    string       // 作者
	Genre     string       // 类别
	Available Availability // 是否可借
}

// NewBook 创建新图书(工厂方法)
// 新书默认可借；字段是否为空由Catalog.Add校验
func NewBook(id, title, author, genre string) Book {
	return Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Genre:     genre,
		Available: Available,
	}
}

// UpdateInfo 覆盖四个可修改字段
// 与新增不同，这里不校验空值
func (b *Book) UpdateInfo(title, author, genre string, available Availability) {
	b.Title = title
	b.Author = author
	b.Genre = genre
	b.Available = available
}
