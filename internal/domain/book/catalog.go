package book

import (
	"strings"
)

// SearchField 可搜索字段
type SearchField string

const (
	FieldTitle  SearchField = "Title"
	FieldAuthor SearchField = "Author"
)

// ParseSearchField 解析搜索字段（大小写不敏感）
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return FieldTitle, nil
	case "author":
		return FieldAuthor, nil
	default:
		return "", ErrInvalidSearchField
	}
}

// Catalog 图书目录：按插入顺序排列的图书表
// 设计说明:
// 1. 每次操作前从存储文件整表加载，操作后整表写回，不在进程内缓存
// 2. 没有索引，所有查找都是顺序扫描
// 3. 修改类操作返回新的Catalog，失败时原Catalog保持不变
type Catalog []Book

// Len 图书数量
func (c Catalog) Len() int {
	return len(c)
}

// IsEmpty 目录是否为空
func (c Catalog) IsEmpty() bool {
	return len(c) == 0
}

// indexOf 按编号查找位置，不存在返回-1
func (c Catalog) indexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// clone 复制一份，避免修改调用方持有的底层数组
func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c), len(c)+1)
	copy(out, c)
	return out
}

// Add 新增图书
// 业务规则（检查顺序固定）:
// 1. 编号已存在 → ErrBookIDDuplicate（即使其他字段为空也报重复）
// 2. 任一字段为空 → ErrMissingFields
// 3. 新书追加到末尾，默认可借
func (c Catalog) Add(id, title, author, genre string) (Catalog, Book, error) {
	if c.indexOf(id) >= 0 {
		return c, Book{}, ErrBookIDDuplicate
	}
	if id == "" || title == "" || author == "" || genre == "" {
		return c, Book{}, ErrMissingFields
	}

	b := NewBook(id, title, author, genre)
	out := c.clone()
	out = append(out, b)
	return out, b, nil
}

// List 返回全部图书，目录为空时返回ErrCatalogEmpty
func (c Catalog) List() (Catalog, error) {
	if c.IsEmpty() {
		return Catalog{}, ErrCatalogEmpty
	}
	return c, nil
}

// Search 按书名或作者做大小写不敏感的子串匹配
// - 空关键词匹配全部图书
// - 目录为空返回ErrCatalogEmpty，有图书但无匹配返回ErrNoResults
func (c Catalog) Search(field SearchField, term string) (Catalog, error) {
	if c.IsEmpty() {
		return Catalog{}, ErrCatalogEmpty
	}

	needle := strings.ToLower(term)
	results := Catalog{}
	for _, b := range c {
		var value string
		switch field {
		case FieldTitle:
			value = b.Title
		case FieldAuthor:
			value = b.Author
		default:
			return Catalog{}, ErrInvalidSearchField
		}
		if strings.Contains(strings.ToLower(value), needle) {
			results = append(results, b)
		}
	}

	if results.IsEmpty() {
		return results, ErrNoResults
	}
	return results, nil
}

// Find 按编号查找图书
func (c Catalog) Find(id string) (Book, error) {
	i := c.indexOf(id)
	if i < 0 {
		return Book{}, ErrBookNotFound
	}
	return c[i], nil
}

// Update 覆盖指定图书的四个可修改字段，位置不变
// 不校验空值（与Add不同）
func (c Catalog) Update(id, title, author, genre string, available Availability) (Catalog, Book, error) {
	i := c.indexOf(id)
	if i < 0 {
		return c, Book{}, ErrBookNotFound
	}

	out := c.clone()
	out[i].UpdateInfo(title, author, genre, available)
	return out, out[i], nil
}

// Delete 删除指定图书
func (c Catalog) Delete(id string) (Catalog, error) {
	i := c.indexOf(id)
	if i < 0 {
		return c, ErrBookNotFound
	}

	out := make(Catalog, 0, len(c)-1)
	out = append(out, c[:i]...)
	out = append(out, c[i+1:]...)
	return out, nil
}
