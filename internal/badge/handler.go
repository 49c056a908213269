package badge

import (
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// RequestBody 定义了 POST /badge 与 DELETE /badge 的请求体，username 与 userId 二选一
type RequestBody struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Badge    string `json:"badge"`
}

type Handler struct {
	ledger *Ledger
	users  *user.Store
}

func NewHandler(ledger *Ledger, users *user.Store) *Handler {
	return &Handler{ledger: ledger, users: users}
}

func (h *Handler) bind(c *gin.Context) (owner, badge string, ok bool) {
	var body RequestBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Badge == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingKeyOrBadge})
		return "", "", false
	}
	owner, err := h.ledger.ResolveOwner(c.Request.Context(), body.Username, body.UserID)
	if err != nil {
		apierror.Respond(c, err)
		return "", "", false
	}
	return owner, body.Badge, true
}

// Award 授予徽章，重复授予不报错
func (h *Handler) Award(c *gin.Context) {
	owner, badge, ok := h.bind(c)
	if !ok {
		return
	}
	if _, err := h.ledger.Award(c.Request.Context(), owner, badge); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Remove 移除徽章，不存在时返回 removed=false
func (h *Handler) Remove(c *gin.Context) {
	owner, badge, ok := h.bind(c)
	if !ok {
		return
	}
	removed, err := h.ledger.Remove(c.Request.Context(), owner, badge)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

// GetLeaderboard 获取徽章排行榜，每次请求都重新计算
func (h *Handler) GetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.users.List(ctx)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	holdings, err := h.ledger.Holdings(ctx)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, BuildLeaderboard(users, holdings))
}
