package skill

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSuggestion 返回一个随机的技能推荐
func GetSuggestion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestion": Suggest()})
}
