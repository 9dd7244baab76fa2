package admin

import (
	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"gorm.io/gorm"
)

// Handler holds all dependencies for the operator API handlers.
type Handler struct {
	cfg    *config.Config
	db     *gorm.DB
	engine *scoreboard.Engine
	broker *pubsub.Broker
}

// NewHandler creates a new operator handler with its dependencies.
func NewHandler(
	cfg *config.Config,
	db *gorm.DB,
	engine *scoreboard.Engine,
	broker *pubsub.Broker,
) *Handler {
	return &Handler{
		cfg:    cfg,
		db:     db,
		engine: engine,
		broker: broker,
	}
}
