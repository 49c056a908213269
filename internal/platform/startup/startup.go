package startup

import (
	"context"

	"github.com/SlpAus/skillswap-connect-backend/internal/badge"
	"github.com/SlpAus/skillswap-connect-backend/internal/message"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/logger"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/metadata"
	"github.com/SlpAus/skillswap-connect-backend/internal/session"
	"github.com/SlpAus/skillswap-connect-backend/internal/thanks"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"gorm.io/gorm"
)

// Stores 持有进程内所有的仓库实例，在启动时构造一次，再注入到各个handler
type Stores struct {
	Users    *user.Store
	Sessions *session.Ledger
	Messages *message.Store
	Thanks   *thanks.Feed
	Badges   *badge.Ledger
}

// NewStores 在同一个数据库上构造全部仓库
func NewStores(db *gorm.DB) *Stores {
	users := user.NewStore(db)
	return &Stores{
		Users:    users,
		Sessions: session.NewLedger(db),
		Messages: message.NewStore(db),
		Thanks:   thanks.NewFeed(db),
		Badges:   badge.NewLedger(db, users),
	}
}

// MigrateAll 迁移所有模块的表结构
func MigrateAll(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		metadata.Migrate,
		user.Migrate,
		session.Migrate,
		message.Migrate,
		thanks.Migrate,
		badge.Migrate,
	}
	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}

// InitializeApplication 是应用启动时执行的总入口：迁移表结构、构造仓库，并按需写入演示数据
func InitializeApplication(ctx context.Context, db *gorm.DB, seed bool) (*Stores, error) {
	logger.Info("开始应用初始化...")

	if err := MigrateAll(db); err != nil {
		return nil, err
	}
	stores := NewStores(db)

	if seed {
		if err := SeedDemo(ctx, db, stores); err != nil {
			return nil, err
		}
	} else {
		logger.Info("已禁用演示数据。")
	}

	logger.Success("应用初始化完成！")
	return stores, nil
}
