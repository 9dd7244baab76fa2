package user

import (
	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/contest"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"gorm.io/gorm"
)

// Handler holds all dependencies for the public API handlers.
type Handler struct {
	cfg     *config.Config
	db      *gorm.DB
	engine  *scoreboard.Engine
	broker  *pubsub.Broker
	contest *contest.Contest
}

// NewHandler creates a new public handler with its dependencies. contest may
// be nil when the competition is driven entirely by the admin API.
func NewHandler(
	cfg *config.Config,
	db *gorm.DB,
	engine *scoreboard.Engine,
	broker *pubsub.Broker,
	def *contest.Contest,
) *Handler {
	return &Handler{
		cfg:     cfg,
		db:      db,
		engine:  engine,
		broker:  broker,
		contest: def,
	}
}
