package health

import (
	"context"
	"net/http"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/database"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// Checker 通过ping存储来判断服务是否可用
type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// Check 执行一次健康检查
func (h *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return database.Ping(ctx, h.db)
}

// GetHealth 处理 GET /health
func (h *Checker) GetHealth(c *gin.Context) {
	if err := h.Check(c.Request.Context()); err != nil {
		logger.Warn("健康检查: 存储不可用: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
