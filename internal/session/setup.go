package session

import (
	"fmt"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// Migrate 负责自动迁移数据库表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Session{}); err != nil {
		return fmt.Errorf("无法迁移session表: %w", err)
	}
	logger.Info("Session数据库表迁移成功。")
	return nil
}
