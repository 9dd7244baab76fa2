package user

import (
	"github.com/ZJUSCT/CSRANK/internal/api"
	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/contest"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewUserRouter creates and configures the public Gin engine.
func NewUserRouter(
	cfg *config.Config,
	db *gorm.DB,
	engine *scoreboard.Engine,
	broker *pubsub.Broker,
	def *contest.Contest) *gin.Engine {

	r := gin.Default()

	r.Use(api.CORSMiddleware(cfg.CORS))

	h := NewHandler(cfg, db, engine, broker, def)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/contest", h.getContest)
		v1.GET("/scoreboard", h.getScoreboard)
		v1.GET("/teams/:name/rank", h.getTeamRank)
		v1.GET("/teams/:name/submissions", h.getTeamSubmissions)
		v1.GET("/teams/:name/submissions/last", h.getLastSubmission)

		// Websocket for live rank changes during a scroll
		v1.GET("/ws/scoreboard", h.handleScoreboardWs)
	}

	return r
}
