package message

import (
	"time"

	"gorm.io/gorm"
)

// Message 是两个用户之间的一条私信，只追加不修改
type Message struct {
	gorm.Model

	UUID   string    `gorm:"uniqueIndex;not null;type:varchar(36)"`
	FromID string    `gorm:"index;not null"`
	ToID   string    `gorm:"index;not null"`
	Text   string    `gorm:"not null"`
	SentAt time.Time `gorm:"not null"`
}

// View 是私信对外的JSON结构
type View struct {
	ID     string    `json:"id"`
	FromID string    `json:"fromId"`
	ToID   string    `json:"toId"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

func (m Message) View() View {
	return View{ID: m.UUID, FromID: m.FromID, ToID: m.ToID, Text: m.Text, Time: m.SentAt}
}
