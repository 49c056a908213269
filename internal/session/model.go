package session

import (
	"time"

	"gorm.io/gorm"
)

// Status 是学习会话的状态
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// UnknownName 是连接查询时找不到用户名的占位符
const UnknownName = "Unknown"

// Session 定义了一次教学会话在数据库中的结构。
// 只会从 pending 迁移到 accepted 一次，不会回退也不会删除。
type Session struct {
	gorm.Model

	UUID   string    `gorm:"uniqueIndex;not null;type:varchar(36)"`
	FromID string    `gorm:"index;not null"`
	ToID   string    `gorm:"index;not null"`
	Skill  string    `gorm:"not null"`
	Time   time.Time `gorm:"not null"`
	Status Status    `gorm:"type:varchar(16);not null"`
}

// View 是会话对外的JSON结构
type View struct {
	ID     string    `json:"id"`
	FromID string    `json:"fromId"`
	ToID   string    `json:"toId"`
	Skill  string    `json:"skill"`
	Time   time.Time `json:"time"`
	Status Status    `json:"status"`
}

// NamedView 在 View 的基础上带上双方当前的用户名
type NamedView struct {
	View
	FromName string `json:"fromName"`
	ToName   string `json:"toName"`
}

func (s Session) View() View {
	return View{
		ID:     s.UUID,
		FromID: s.FromID,
		ToID:   s.ToID,
		Skill:  s.Skill,
		Time:   s.Time,
		Status: s.Status,
	}
}
