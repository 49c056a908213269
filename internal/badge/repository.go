package badge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"gorm.io/gorm"
)

const errMissingKeyOrBadge = "username (or userId) and badge are required"

// Directory 是徽章账本对身份仓库的只读依赖
type Directory interface {
	UsernameByID(ctx context.Context, id string) (string, bool, error)
	CanonicalUsername(ctx context.Context, username string) (string, bool, error)
}

// Ledger 是按用户名组织的徽章账本。
// “不重复才追加”必须在同一把锁内完成检查和插入。
type Ledger struct {
	db    *gorm.DB
	users Directory
	mu    sync.RWMutex
}

func NewLedger(db *gorm.DB, users Directory) *Ledger {
	return &Ledger{db: db, users: users}
}

// ResolveOwner 确定徽章归属的用户名：优先使用 username，否则通过 userId 查找。
// 用户名属于已注册用户时使用该用户自己的大小写。
func (l *Ledger) ResolveOwner(ctx context.Context, username, userID string) (string, error) {
	if username != "" {
		canonical, ok, err := l.users.CanonicalUsername(ctx, username)
		if err != nil {
			return "", fmt.Errorf("无法查询用户 %s: %w", username, err)
		}
		if ok {
			return canonical, nil
		}
		return username, nil
	}

	name, ok, err := l.users.UsernameByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("无法查询用户 %s: %w", userID, err)
	}
	if !ok {
		return "", apierror.InvalidInput(errMissingKeyOrBadge)
	}
	return name, nil
}

// Award 授予徽章。已存在大小写不敏感的同名徽章时静默忽略，返回 added=false。
func (l *Ledger) Award(ctx context.Context, owner, badge string) (bool, error) {
	if owner == "" || badge == "" {
		return false, apierror.InvalidInput(errMissingKeyOrBadge)
	}
	ownerKey := user.NormalizeUsername(owner)
	nameKey := strings.ToLower(badge)

	l.mu.Lock()
	defer l.mu.Unlock()

	var count int64
	err := l.db.WithContext(ctx).Model(&Badge{}).
		Where("owner_key = ? AND name_key = ?", ownerKey, nameKey).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("无法查询 %s 的徽章: %w", owner, err)
	}
	if count > 0 {
		return false, nil
	}

	record := Badge{OwnerKey: ownerKey, Owner: owner, Name: badge, NameKey: nameKey}
	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("无法授予 %s 徽章 %s: %w", owner, badge, err)
	}
	return true, nil
}

// Remove 移除大小写不敏感匹配的徽章。用户或徽章不存在时不是错误，removed=false。
func (l *Ledger) Remove(ctx context.Context, owner, badge string) (bool, error) {
	if owner == "" || badge == "" {
		return false, apierror.InvalidInput(errMissingKeyOrBadge)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	result := l.db.WithContext(ctx).
		Where("owner_key = ? AND name_key = ?", user.NormalizeUsername(owner), strings.ToLower(badge)).
		Delete(&Badge{})
	if result.Error != nil {
		return false, fmt.Errorf("无法移除 %s 的徽章 %s: %w", owner, badge, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Holdings 返回所有持有徽章的用户名，按首次授予的顺序排列
func (l *Ledger) Holdings(ctx context.Context) ([]Holding, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var records []Badge
	if err := l.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("无法读取徽章账本: %w", err)
	}

	index := make(map[string]int)
	holdings := make([]Holding, 0)
	for _, r := range records {
		i, ok := index[r.OwnerKey]
		if !ok {
			i = len(holdings)
			index[r.OwnerKey] = i
			holdings = append(holdings, Holding{Key: r.OwnerKey, Username: r.Owner, Badges: []string{}})
		}
		holdings[i].Badges = append(holdings[i].Badges, r.Name)
	}
	return holdings, nil
}
