package session

import (
	"encoding/json"
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// ProposeRequestBody 定义了 POST /session 的请求体
type ProposeRequestBody struct {
	FromID string          `json:"fromId"`
	ToID   string          `json:"toId"`
	Skill  string          `json:"skill"`
	Time   json.RawMessage `json:"time"`
}

// AcceptRequestBody 定义了 POST /session/accept 的请求体
type AcceptRequestBody struct {
	SessionID string `json:"sessionId"`
}

type Handler struct {
	ledger *Ledger
	users  *user.Store
}

func NewHandler(ledger *Ledger, users *user.Store) *Handler {
	return &Handler{ledger: ledger, users: users}
}

// Propose 发起一个新的会话请求
func (h *Handler) Propose(c *gin.Context) {
	var body ProposeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromId, toId and skill are required"})
		return
	}
	at, err := ParseTime(body.Time)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	s, err := h.ledger.Propose(c.Request.Context(), body.FromID, body.ToID, body.Skill, at)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// Accept 接受一个会话
func (h *Handler) Accept(c *gin.Context) {
	var body AcceptRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s, err := h.ledger.Accept(c.Request.Context(), body.SessionID)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// ListForUser 返回用户参与的所有会话
func (h *Handler) ListForUser(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	views, err := h.ledger.ListForUser(ctx, u.UUID, h.users)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
