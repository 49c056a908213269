package user

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 定义了用户在数据库中的模型。
// gorm.Model 的自增ID决定了用户的插入顺序，匹配结果按此顺序返回。
type User struct {
	gorm.Model

	// UUID 是对外暴露的用户ID
	UUID string `gorm:"uniqueIndex;not null;type:varchar(36)"`

	// Username 保留用户首次登录时的大小写，用于展示
	Username string `gorm:"not null"`

	// UsernameKey 是小写化的用户名，用户名在任何地方都不区分大小写
	UsernameKey string `gorm:"uniqueIndex;not null"`

	SkillsOffered datatypes.JSONSlice[string]
	SkillsWanted  datatypes.JSONSlice[string]
}

// Profile 是用户对外的JSON结构
type Profile struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
}

// Profile 把数据库模型转换为API响应，空列表输出为 []
func (u User) Profile() Profile {
	return Profile{
		ID:            u.UUID,
		Username:      u.Username,
		SkillsOffered: cloneSkills(u.SkillsOffered),
		SkillsWanted:  cloneSkills(u.SkillsWanted),
	}
}

// Profiles 批量转换，保持原有顺序
func Profiles(users []User) []Profile {
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}

// Offered 返回可教授的技能列表（非nil）
func (u User) Offered() []string { return cloneSkills(u.SkillsOffered) }

// Wanted 返回想学习的技能列表（非nil）
func (u User) Wanted() []string { return cloneSkills(u.SkillsWanted) }

// NormalizeUsername 返回用户名的比较键
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

func cloneSkills(skills []string) []string {
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}
