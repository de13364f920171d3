// Package notice 描述一次操作反馈给操作员的结果
//
// 每个操作的结果都会落在三个级别之一：
//   - info: 提示信息（如目录为空、没有匹配结果）
//   - success: 操作成功（如"图书已添加"）
//   - error: 操作失败（如"图书不存在"、数据文件读写失败）
//
// 展示层（HTML页面、JSON接口、命令行）只负责按级别渲染，不再自行判断错误类型。
package notice

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Level 提示级别
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice 带级别的提示信息
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Info 提示信息
func Info(message string) Notice {
	return Notice{Level: LevelInfo, Message: message}
}

// Success 成功信息
func Success(message string) Notice {
	return Notice{Level: LevelSuccess, Message: message}
}

// Error 错误信息
func Error(message string) Notice {
	return Notice{Level: LevelError, Message: message}
}

// FromError 将错误转换为提示
// 2xxxx提示码转换为info级别，其余一律为error级别；
// 非AppError只显示通用信息，内部细节留给日志
func FromError(err error) Notice {
	appErr := apperrors.GetAppError(err)
	if apperrors.IsInformational(appErr) {
		return Info(appErr.Message)
	}
	return Error(appErr.Message)
}

// IsZero 是否为空提示
func (n Notice) IsZero() bool {
	return n.Level == "" && n.Message == ""
}
