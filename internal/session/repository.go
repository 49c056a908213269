package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameResolver 把用户ID解析为当前用户名
type NameResolver interface {
	UsernameByID(ctx context.Context, id string) (string, bool, error)
}

// Ledger 是只追加的会话账本
type Ledger struct {
	db  *gorm.DB
	mu  sync.Mutex
	now func() time.Time
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

// Propose 创建一条 pending 状态的会话。at 为零值时使用当前时间。
func (l *Ledger) Propose(ctx context.Context, fromID, toID, skill string, at time.Time) (*Session, error) {
	if fromID == "" || toID == "" || skill == "" {
		return nil, apierror.InvalidInput("fromId, toId and skill are required")
	}
	if fromID == toID {
		return nil, apierror.InvalidInput("fromId and toId must be different users")
	}
	if at.IsZero() {
		at = l.now()
	}

	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}
	s := Session{
		UUID:   newUUID.String(),
		FromID: fromID,
		ToID:   toID,
		Skill:  skill,
		Time:   at.UTC(),
		Status: StatusPending,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, fmt.Errorf("无法保存会话: %w", err)
	}
	return &s, nil
}

// Accept 把会话标记为 accepted。对已接受的会话再次调用是无害的空操作。
func (l *Ledger) Accept(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, apierror.NotFound("Session not found")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var s Session
	err := l.db.WithContext(ctx).Where("uuid = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("无法查询会话 %s: %w", id, err)
	}

	if s.Status == StatusAccepted {
		return &s, nil
	}
	s.Status = StatusAccepted
	if err := l.db.WithContext(ctx).Model(&s).Update("status", StatusAccepted).Error; err != nil {
		return nil, fmt.Errorf("无法接受会话 %s: %w", id, err)
	}
	return &s, nil
}

// ListForUser 按插入顺序返回用户参与的所有会话（作为发起方或接收方），
// 并连接双方当前的用户名；解析不到的用户名使用 UnknownName。
func (l *Ledger) ListForUser(ctx context.Context, userID string, names NameResolver) ([]NamedView, error) {
	l.mu.Lock()
	var sessions []Session
	err := l.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", userID, userID).
		Order("id asc").
		Find(&sessions).Error
	l.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("无法读取用户 %s 的会话: %w", userID, err)
	}

	cache := make(map[string]string)
	resolve := func(id string) (string, error) {
		if name, ok := cache[id]; ok {
			return name, nil
		}
		name, ok, err := names.UsernameByID(ctx, id)
		if err != nil {
			return "", err
		}
		if !ok {
			name = UnknownName
		}
		cache[id] = name
		return name, nil
	}

	views := make([]NamedView, 0, len(sessions))
	for _, s := range sessions {
		fromName, err := resolve(s.FromID)
		if err != nil {
			return nil, fmt.Errorf("无法解析用户名: %w", err)
		}
		toName, err := resolve(s.ToID)
		if err != nil {
			return nil, fmt.Errorf("无法解析用户名: %w", err)
		}
		views = append(views, NamedView{View: s.View(), FromName: fromName, ToName: toName})
	}
	return views, nil
}

// ExistsBetween 判断两个用户之间（任一方向）是否已有会话
func (l *Ledger) ExistsBetween(ctx context.Context, a, b string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var count int64
	err := l.db.WithContext(ctx).Model(&Session{}).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("无法查询会话: %w", err)
	}
	return count > 0, nil
}
