package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类型（不要直接暴露HTTP状态码）
// 2. Message是给操作员看的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的提示信息
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较
// 这样包装过内部错误的AppError仍然能与预定义错误匹配：
//
//	errors.Is(apperrors.WrapCode(err, ErrCodeStoreIO, "..."), ErrStoreIO) == true
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WithErr 复制预定义错误并附带内部错误
// 用法：apperrors.ErrBindError.WithErr(err)
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// WrapCode 使用指定错误码包装底层错误
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 2xxxx: 提示信息（不是失败，例如目录为空、没有匹配结果）
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（存储文件读写失败）

const (
	// 提示信息（20000-20099）
	ErrCodeCatalogEmpty = 20001 // 目录为空
	ErrCodeNoResults    = 20002 // 没有匹配结果

	// 系统级错误码（50000-50099）
	ErrCodeInternal    = 50000 // 内部错误
	ErrCodeStoreIO     = 50003 // 存储文件读写失败
	ErrCodeStoreSchema = 50004 // 存储文件表头不符合约定

	// 资源错误（40400-40499）
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 业务规则错误（40000-40099）
	ErrCodeBookIDDuplicate = 40004 // 图书编号已存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeMissingFields = 40902 // 必填字段为空
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal    = New(ErrCodeInternal, "系统内部错误")
	ErrStoreIO     = New(ErrCodeStoreIO, "图书数据文件读写失败")
	ErrStoreSchema = New(ErrCodeStoreSchema, "图书数据文件格式不正确")

	// 资源不存在
	ErrBookNotFound = New(ErrCodeBookNotFound, "图书不存在")

	// 业务规则
	ErrBookIDDuplicate = New(ErrCodeBookIDDuplicate, "图书编号已存在")

	// 参数错误
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrMissingFields = New(ErrCodeMissingFields, "请填写所有字段")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithErr(err)
}

// IsInformational 判断是否为提示类"错误"（2xxxx）
// 例如目录为空、搜索无结果，这些不是失败，只是需要告诉操作员的信号
func IsInformational(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 20000 && appErr.Code < 30000
}

// IsServerError 判断是否为服务端错误（5xxxx）
func IsServerError(err error) bool {
	return GetAppError(err).Code >= 50000
}
