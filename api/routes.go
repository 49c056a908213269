package api

import (
	"github.com/SlpAus/skillswap-connect-backend/internal/badge"
	"github.com/SlpAus/skillswap-connect-backend/internal/match"
	"github.com/SlpAus/skillswap-connect-backend/internal/message"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/health"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/startup"
	"github.com/SlpAus/skillswap-connect-backend/internal/session"
	"github.com/SlpAus/skillswap-connect-backend/internal/skill"
	"github.com/SlpAus/skillswap-connect-backend/internal/thanks"
	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
// basePath 为空时路由挂载在根路径下
func SetupRoutes(router *gin.Engine, basePath string, stores *startup.Stores, checker *health.Checker) {
	userHandler := user.NewHandler(stores.Users)
	matchHandler := match.NewHandler(stores.Users)
	sessionHandler := session.NewHandler(stores.Sessions, stores.Users)
	messageHandler := message.NewHandler(stores.Messages)
	thanksHandler := thanks.NewHandler(stores.Thanks)
	badgeHandler := badge.NewHandler(stores.Badges, stores.Users)

	api := router.Group(basePath)
	{
		// 身份与资料
		api.POST("/auth", userHandler.Login)
		api.POST("/profile", userHandler.UpdateProfile)
		api.GET("/matches/:id", matchHandler.GetMatches)

		// 会话
		api.POST("/session", sessionHandler.Propose)
		api.POST("/session/accept", sessionHandler.Accept)
		api.GET("/sessions/:id", sessionHandler.ListForUser)

		// 私信
		api.POST("/message", messageHandler.Send)
		api.GET("/messages/:a/:b", messageHandler.Conversation)

		// 感谢墙
		api.POST("/thanks", thanksHandler.Post)
		api.GET("/thanks", thanksHandler.List)

		// 徽章与排行榜
		api.POST("/badge", badgeHandler.Award)
		api.DELETE("/badge", badgeHandler.Remove)
		api.GET("/leaderboard", badgeHandler.GetLeaderboard)

		api.GET("/suggest", skill.GetSuggestion)
		api.GET("/health", checker.GetHealth)
	}
}
