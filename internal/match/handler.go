package match

import (
	"net/http"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// Handler 处理匹配查询
type Handler struct {
	users *user.Store
}

func NewHandler(users *user.Store) *Handler {
	return &Handler{users: users}
}

// GetMatches 返回与指定用户互相匹配的所有用户
func (h *Handler) GetMatches(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := h.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	all, err := h.users.List(ctx)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Profiles(FindMatches(*target, all)))
}
