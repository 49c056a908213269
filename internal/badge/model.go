package badge

import "time"

// Badge 是授予某个用户名的一枚徽章。
// (OwnerKey, NameKey) 上的唯一索引保证同一用户不会拥有大小写不同的重复徽章。
// 移除徽章是物理删除，因此不使用 gorm.Model 的软删除。
type Badge struct {
	ID uint `gorm:"primarykey"`

	// OwnerKey 是小写化的用户名
	OwnerKey string `gorm:"not null;uniqueIndex:idx_owner_badge"`
	// Owner 是授予时用于展示的用户名
	Owner string `gorm:"not null"`

	Name    string `gorm:"not null"`
	NameKey string `gorm:"not null;uniqueIndex:idx_owner_badge"`

	CreatedAt time.Time
}

// Holding 是某个用户名当前持有的全部徽章，按授予顺序排列
type Holding struct {
	Key      string
	Username string
	Badges   []string
}

// Row 是排行榜的一行，每次读取时现算，从不缓存
type Row struct {
	Username      string   `json:"username"`
	Badges        int      `json:"badges"`
	BadgesList    []string `json:"badgesList"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
}
