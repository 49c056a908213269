package thanks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feed 是只追加的感谢墙
type Feed struct {
	db  *gorm.DB
	mu  sync.RWMutex
	now func() time.Time
}

func NewFeed(db *gorm.DB) *Feed {
	return &Feed{db: db, now: time.Now}
}

// Post 追加一条感谢，三个字段都不能为空
func (f *Feed) Post(ctx context.Context, from, to, message string) (*Entry, error) {
	if from == "" || to == "" || message == "" {
		return nil, apierror.InvalidInput("from, to and message are required")
	}
	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}
	e := Entry{
		UUID:     newUUID.String(),
		From:     from,
		To:       to,
		Message:  message,
		PostedAt: f.now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, fmt.Errorf("无法保存感谢留言: %w", err)
	}
	return &e, nil
}

// List 按插入顺序（最早的在前）返回全部留言，排序与截断由客户端负责
func (f *Feed) List(ctx context.Context) ([]Entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var entries []Entry
	if err := f.db.WithContext(ctx).Order("id asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("无法读取感谢墙: %w", err)
	}
	return entries, nil
}

// Count 返回留言总数
func (f *Feed) Count(ctx context.Context) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var count int64
	if err := f.db.WithContext(ctx).Model(&Entry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("无法统计感谢墙: %w", err)
	}
	return count, nil
}
