package thanks

import (
	"time"

	"gorm.io/gorm"
)

// Entry 是感谢墙上的一条公开留言。
// From/To 是自由文本的用户名，不校验是否为已注册用户。
type Entry struct {
	gorm.Model

	UUID     string    `gorm:"uniqueIndex;not null;type:varchar(36)"`
	From     string    `gorm:"not null"`
	To       string    `gorm:"not null"`
	Message  string    `gorm:"not null"`
	PostedAt time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "thanks_entries"
}

// View 是感谢留言对外的JSON结构
type View struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (e Entry) View() View {
	return View{ID: e.UUID, From: e.From, To: e.To, Message: e.Message, Time: e.PostedAt}
}
