package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/p-stoney/discordbot-restapi/config"
	"github.com/p-stoney/discordbot-restapi/internal/api/handler"
	"github.com/p-stoney/discordbot-restapi/internal/api/middleware"
	"github.com/p-stoney/discordbot-restapi/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 学员模块
	users := r.Group("/users")
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.GET("/username/:username", h.User.GetUserByName)
		users.GET("/discordId/:id", h.User.GetUserByDiscordID)
		users.POST("", h.User.CreateUser)
		users.PATCH("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}

	// Sprint 模块
	sprints := r.Group("/sprints")
	{
		sprints.GET("", h.Sprint.ListSprints)
		sprints.GET("/:id", h.Sprint.GetSprint)
		sprints.GET("/course/:course", h.Sprint.GetSprintsByCourse)
		sprints.POST("", h.Sprint.CreateSprint)
		sprints.PATCH("/:id", h.Sprint.UpdateSprint)
		sprints.DELETE("/:id", h.Sprint.DeleteSprint)
	}

	// 消息模板模块
	templates := r.Group("/templates")
	{
		templates.GET("", h.Template.ListTemplates)
		templates.GET("/:id", h.Template.GetTemplate)
		templates.POST("", h.Template.CreateTemplate)
		templates.PATCH("/:id", h.Template.UpdateTemplate)
		templates.DELETE("/:id", h.Template.DeleteTemplate)
	}

	// 祝贺消息模块
	messages := r.Group("/messages")
	{
		messages.GET("", h.Message.ListMessages)
		messages.GET("/:id", h.Message.GetMessage)
		messages.POST("", h.Message.CreateMessage)
		messages.PATCH("/:id", h.Message.UpdateMessage)
		messages.DELETE("/:id", h.Message.DeleteMessage)

		// 发送接口限流，防止对外部服务的滥用调用
		messages.POST("/send", middleware.RateLimit(rdb, 10, time.Minute), h.Message.SendMessage)
	}

	return r
}
