package message

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store 保存用户之间的私信
type Store struct {
	db  *gorm.DB
	mu  sync.RWMutex
	now func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Send 追加一条私信，三个字段都不能为空
func (s *Store) Send(ctx context.Context, fromID, toID, text string) (*Message, error) {
	if fromID == "" || toID == "" || text == "" {
		return nil, apierror.InvalidInput("fromId, toId and text are required")
	}
	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}
	m := Message{
		UUID:   newUUID.String(),
		FromID: fromID,
		ToID:   toID,
		Text:   text,
		SentAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("无法保存私信: %w", err)
	}
	return &m, nil
}

// Conversation 按插入顺序返回 a 与 b 之间双向的全部私信
func (s *Store) Conversation(ctx context.Context, a, b string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var messages []Message
	err := s.db.WithContext(ctx).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Order("id asc").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取 %s 与 %s 之间的私信: %w", a, b, err)
	}
	return messages, nil
}
