// Package apierror 定义了对外暴露的错误分类以及到HTTP状态码的映射。
package apierror

import (
	"errors"
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/gin-gonic/gin"
)

var (
	// ErrInvalidInput 表示缺少必填字段或字段格式错误，对应 400
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 表示引用的ID不存在，对应 404
	ErrNotFound = errors.New("not found")
)

// Error 携带面向客户端的错误信息，并通过 Unwrap 归类到上面的某个哨兵错误
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// InvalidInput 构造一个 ErrInvalidInput 类错误
func InvalidInput(message string) error {
	return &Error{kind: ErrInvalidInput, message: message}
}

// NotFound 构造一个 ErrNotFound 类错误
func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

// StatusOf 返回错误对应的HTTP状态码
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond 把错误写成 {"error": "..."} 响应
// 未分类的错误视为内部错误，只记录日志，不把细节返回给客户端
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("%s %s 处理失败: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(status, gin.H{"error": apiErr.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
