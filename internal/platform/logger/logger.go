package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02 15:04:05"

func stamp() string {
	return time.Now().Format(timeLayout)
}

// Info 输出普通信息
func Info(format string, args ...any) {
	color.Cyan("[%s] [INFO] %s", stamp(), fmt.Sprintf(format, args...))
}

// Success 输出成功信息
func Success(format string, args ...any) {
	color.Green("[%s] [OK] %s", stamp(), fmt.Sprintf(format, args...))
}

// Warn 输出警告
func Warn(format string, args ...any) {
	color.Yellow("[%s] [WARN] %s", stamp(), fmt.Sprintf(format, args...))
}

// Error 输出错误
func Error(format string, args ...any) {
	color.Red("[%s] [ERROR] %s", stamp(), fmt.Sprintf(format, args...))
}

// Request 按状态码着色输出一次HTTP请求
func Request(method, path string, status int, duration time.Duration) {
	var paint func(format string, a ...interface{})
	switch {
	case status >= 500:
		paint = color.Red
	case status >= 400:
		paint = color.Yellow
	case status >= 300:
		paint = color.Cyan
	default:
		paint = color.Green
	}
	paint("[%s] %-6s %-40s [%d] (%s)", stamp(), method, path, status, duration.Round(time.Microsecond))
}

// RequestLogger 是替代 gin.Logger 的请求日志中间件
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
