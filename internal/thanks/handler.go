package thanks

import (
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/gin-gonic/gin"
)

// PostRequestBody 定义了 POST /thanks 的请求体
type PostRequestBody struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

// Post 在感谢墙上发布一条留言
func (h *Handler) Post(c *gin.Context) {
	var body PostRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and message are required"})
		return
	}
	if _, err := h.feed.Post(c.Request.Context(), body.From, body.To, body.Message); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List 返回感谢墙
func (h *Handler) List(c *gin.Context) {
	entries, err := h.feed.List(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	views := make([]View, 0, len(entries))
	for _, e := range entries {
		views = append(views, e.View())
	}
	c.JSON(http.StatusOK, views)
}
