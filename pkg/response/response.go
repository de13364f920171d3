package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/notice"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），0表示成功
// 2. Message是给操作员看的提示信息
// 3. Level是提示级别（info/success/error），展示层据此选择样式
// 4. Data是业务数据，失败时为null
type Response struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Level   notice.Level `json:"level,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// WithNotice 携带提示的成功响应
// 目录为空、没有匹配结果也走这里（Code=0，Level=info），提示为空时等同于Success
func WithNotice(c *gin.Context, n notice.Notice, data interface{}) {
	if n.IsZero() {
		Success(c, data)
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: n.Message,
		Level:   n.Level,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := addBookUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误交给日志中间件记录，不返回给客户端
	_ = c.Error(err)

	n := notice.FromError(appErr)
	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: n.Message,
		Level:   n.Level,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Level:   notice.LevelError,
	})
}
