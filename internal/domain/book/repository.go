package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 整表读写：Load读出全部图书，Save覆盖写回全部图书
// 3. 便于Mock测试,不依赖具体文件格式
type Repository interface {
	// Initialize 存储不存在时创建只有表头的空存储，可重复调用
	Initialize(ctx context.Context) error

	// Load 读出全部图书；存储不存在时返回空目录
	Load(ctx context.Context) (Catalog, error)

	// Save 覆盖写回全部图书（非原子写入）
	Save(ctx context.Context, catalog Catalog) error
}
