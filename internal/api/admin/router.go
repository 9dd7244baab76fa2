package admin

import (
	"github.com/ZJUSCT/CSRANK/internal/api"
	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewAdminRouter creates and configures the operator Gin engine. All
// directive endpoints require a valid operator token.
func NewAdminRouter(
	cfg *config.Config,
	db *gorm.DB,
	engine *scoreboard.Engine,
	broker *pubsub.Broker) *gin.Engine {

	r := gin.Default()

	h := NewHandler(cfg, db, engine, broker)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", h.login)

		authed := v1.Group("/")
		authed.Use(api.AuthMiddleware(cfg.Auth.JWT.Secret))
		{
			authed.POST("/teams", h.addTeam)
			authed.POST("/start", h.start)
			authed.POST("/submissions", h.submit)
			authed.POST("/flush", h.flush)
			authed.POST("/freeze", h.freeze)
			authed.POST("/scroll", h.scroll)
			authed.POST("/end", h.end)

			authed.GET("/events", h.listRankEvents)
			authed.GET("/submissions", h.listSubmissions)
		}
	}

	return r
}
