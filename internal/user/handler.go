package user

import (
	"encoding/json"
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/gin-gonic/gin"
)

// LoginRequestBody 定义了 POST /auth 的请求体
type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
}

// ProfileRequestBody 定义了 POST /profile 的请求体。
// 技能列表保留原始JSON，非数组的值会被当作空列表，而不是拒绝请求。
type ProfileRequestBody struct {
	ID            string          `json:"id"`
	SkillsOffered json.RawMessage `json:"skillsOffered"`
	SkillsWanted  json.RawMessage `json:"skillsWanted"`
}

// Handler 处理身份与资料相关的请求
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Login 按用户名登录，不存在时自动注册
func (h *Handler) Login(c *gin.Context) {
	var body LoginRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	u, err := h.store.Login(c.Request.Context(), body.Username)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u.Profile())
}

// UpdateProfile 整体替换用户的技能列表
func (h *Handler) UpdateProfile(c *gin.Context) {
	var body ProfileRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	u, err := h.store.UpdateProfile(
		c.Request.Context(),
		body.ID,
		CoerceSkillList(body.SkillsOffered),
		CoerceSkillList(body.SkillsWanted),
	)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u.Profile())
}

// CoerceSkillList 把任意JSON值宽松地转换为技能列表：
// 缺省、null 或非数组得到空列表，数组中的非字符串元素被丢弃。
func CoerceSkillList(raw json.RawMessage) []string {
	skills := []string{}
	if len(raw) == 0 {
		return skills
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return skills
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			skills = append(skills, s)
		}
	}
	return skills
}
