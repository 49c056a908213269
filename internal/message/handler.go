package message

import (
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/gin-gonic/gin"
)

// SendRequestBody 定义了 POST /message 的请求体
type SendRequestBody struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Text   string `json:"text"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Send 发送一条私信
func (h *Handler) Send(c *gin.Context) {
	var body SendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromId, toId and text are required"})
		return
	}
	m, err := h.store.Send(c.Request.Context(), body.FromID, body.ToID, body.Text)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, m.View())
}

// Conversation 返回两个用户之间的对话
func (h *Handler) Conversation(c *gin.Context) {
	messages, err := h.store.Conversation(c.Request.Context(), c.Param("a"), c.Param("b"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	views := make([]View, 0, len(messages))
	for _, m := range messages {
		views = append(views, m.View())
	}
	c.JSON(http.StatusOK, views)
}
