package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrBookIDDuplicate 图书编号已存在
	ErrBookIDDuplicate = apperrors.ErrBookIDDuplicate

	// ErrMissingFields 新增图书时有字段为空
	ErrMissingFields = apperrors.ErrMissingFields

	// ErrInvalidAvailability 借阅状态只能是Yes或No
	ErrInvalidAvailability = apperrors.New(apperrors.ErrCodeInvalidParams, "借阅状态只能是Yes或No")

	// ErrInvalidSearchField 只能按书名或作者搜索
	ErrInvalidSearchField = apperrors.New(apperrors.ErrCodeInvalidParams, "只能按书名(Title)或作者(Author)搜索")

	// ErrCatalogEmpty 目录为空（提示信号，不是失败）
	ErrCatalogEmpty = apperrors.New(apperrors.ErrCodeCatalogEmpty, "图书馆中暂无图书")

	// ErrNoResults 没有匹配的图书（提示信号，不是失败）
	ErrNoResults = apperrors.New(apperrors.ErrCodeNoResults, "没有找到匹配的图书")
)
