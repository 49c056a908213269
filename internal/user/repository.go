package user

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store 是身份与资料的仓库。
// mu 保证“查找-不存在则创建”与“读取-覆盖资料”这类读改写序列不会交错。
type Store struct {
	db *gorm.DB
	mu sync.RWMutex
}

// NewStore 创建一个绑定到给定数据库的仓库
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Login 按用户名（不区分大小写）查找用户，不存在则创建一个技能列表为空的新用户。
// 同一用户名的重复调用总是返回同一个用户。
func (s *Store) Login(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, apierror.InvalidInput("Username required")
	}
	key := NormalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.findBy(ctx, "username_key = ?", key)
	if err != nil {
		return nil, fmt.Errorf("无法查询用户 %s: %w", username, err)
	}
	if existing != nil {
		return existing, nil
	}

	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}
	newUser := User{
		UUID:          newUUID.String(),
		Username:      username,
		UsernameKey:   key,
		SkillsOffered: datatypes.JSONSlice[string]{},
		SkillsWanted:  datatypes.JSONSlice[string]{},
	}
	if err := s.db.WithContext(ctx).Create(&newUser).Error; err != nil {
		return nil, fmt.Errorf("无法创建新用户 %s: %w", username, err)
	}
	return &newUser, nil
}

// UpdateProfile 用给定列表整体替换用户的两个技能列表（不合并）
func (s *Store) UpdateProfile(ctx context.Context, id string, offered, wanted []string) (*User, error) {
	if id == "" {
		return nil, apierror.NotFound("User not found")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.findBy(ctx, "uuid = ?", id)
	if err != nil {
		return nil, fmt.Errorf("无法查询用户 %s: %w", id, err)
	}
	if u == nil {
		return nil, apierror.NotFound("User not found")
	}

	u.SkillsOffered = datatypes.JSONSlice[string](cloneSkills(offered))
	u.SkillsWanted = datatypes.JSONSlice[string](cloneSkills(wanted))
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, fmt.Errorf("无法更新用户 %s 的资料: %w", id, err)
	}
	return u, nil
}

// FindByID 根据对外ID查找用户，不存在时返回 ErrNotFound
func (s *Store) FindByID(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, apierror.NotFound("User not found")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.findBy(ctx, "uuid = ?", id)
	if err != nil {
		return nil, fmt.Errorf("无法查询用户 %s: %w", id, err)
	}
	if u == nil {
		return nil, apierror.NotFound("User not found")
	}
	return u, nil
}

// List 按插入顺序返回全部用户
func (s *Store) List(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法读取用户列表: %w", err)
	}
	return users, nil
}

// UsernameByID 返回用户当前的用户名，找不到时 ok 为 false
func (s *Store) UsernameByID(ctx context.Context, id string) (string, bool, error) {
	if id == "" {
		return "", false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.findBy(ctx, "uuid = ?", id)
	if err != nil || u == nil {
		return "", false, err
	}
	return u.Username, true, nil
}

// CanonicalUsername 返回已注册用户名的原始大小写形式
func (s *Store) CanonicalUsername(ctx context.Context, username string) (string, bool, error) {
	if username == "" {
		return "", false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.findBy(ctx, "username_key = ?", NormalizeUsername(username))
	if err != nil || u == nil {
		return "", false, err
	}
	return u.Username, true, nil
}

// findBy 返回第一条满足条件的记录，没有时返回 (nil, nil)。调用方负责加锁。
func (s *Store) findBy(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where(query, args...).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
