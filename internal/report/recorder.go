package report

import (
	"github.com/ZJUSCT/CSRANK/internal/database"
	"github.com/ZJUSCT/CSRANK/internal/database/models"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder persists rank changes to the audit store. Snapshots are not
// stored; they can always be rebuilt from the submission log. Failures are
// logged and swallowed so a broken disk never blocks a scroll.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) RankChange(ev scoreboard.RankChange) {
	row := &models.RankEventRow{
		ID:        uuid.New().String(),
		Team:      ev.Team,
		Overtaken: ev.Overtaken,
		Solved:    ev.Solved,
		Penalty:   ev.Penalty,
	}
	if err := database.InsertRankEvent(r.db, row); err != nil {
		zap.S().Errorf("failed to record rank event for %s: %v", ev.Team, err)
	}
}

func (r *Recorder) Snapshot(*scoreboard.Snapshot) {}
