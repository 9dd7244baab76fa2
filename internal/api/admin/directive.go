package admin

import (
	"fmt"
	"net/http"

	"github.com/ZJUSCT/CSRANK/internal/database"
	"github.com/ZJUSCT/CSRANK/internal/database/models"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"github.com/ZJUSCT/CSRANK/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) addTeam(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}
	if err := h.engine.AddTeam(req.Name); err != nil {
		util.EngineError(c, err)
		return
	}
	zap.S().Infof("team %q registered", req.Name)
	util.Success(c, nil, "Team added successfully")
}

func (h *Handler) start(c *gin.Context) {
	var req struct {
		DurationMinutes int `json:"duration_minutes" binding:"required"`
		ProblemCount    int `json:"problem_count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}
	if err := h.engine.Start(req.DurationMinutes, req.ProblemCount); err != nil {
		util.EngineError(c, err)
		return
	}
	util.Success(c, nil, "Competition started")
}

// submit ingests one judged attempt and appends it to the audit log. The
// audit row is written even while frozen; only the public state is deferred.
func (h *Handler) submit(c *gin.Context) {
	var req struct {
		Problem string `json:"problem" binding:"required"`
		Team    string `json:"team" binding:"required"`
		Outcome string `json:"outcome" binding:"required"`
		Minute  *int   `json:"minute" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Problem) != 1 {
		util.Error(c, http.StatusBadRequest, fmt.Errorf("invalid problem %q", req.Problem))
		return
	}

	frozen := h.engine.Frozen()
	if err := h.engine.Submit(req.Problem[0], req.Team, scoreboard.Outcome(req.Outcome), *req.Minute); err != nil {
		util.EngineError(c, err)
		return
	}

	row := &models.SubmissionRow{
		ID:      uuid.New().String(),
		Team:    req.Team,
		Problem: req.Problem,
		Outcome: req.Outcome,
		Minute:  *req.Minute,
		Frozen:  frozen,
	}
	if err := database.InsertSubmission(h.db, row); err != nil {
		zap.S().Errorf("failed to record submission for %s: %v", req.Team, err)
	}

	util.Success(c, nil, "Submission recorded")
}

func (h *Handler) flush(c *gin.Context) {
	if err := h.engine.Flush(); err != nil {
		util.EngineError(c, err)
		return
	}
	util.Success(c, nil, "Flush scoreboard")
}

func (h *Handler) freeze(c *gin.Context) {
	if err := h.engine.Freeze(); err != nil {
		util.EngineError(c, err)
		return
	}
	util.Success(c, nil, "Freeze scoreboard")
}

// scroll runs the full unfreeze pass. Rank changes stream out through the
// reporter while the directive is running; the response carries the final
// board.
func (h *Handler) scroll(c *gin.Context) {
	if err := h.engine.Scroll(); err != nil {
		util.EngineError(c, err)
		return
	}
	util.Success(c, h.engine.Snapshot(), "Scroll scoreboard")
}

func (h *Handler) end(c *gin.Context) {
	if err := h.engine.End(); err != nil {
		util.EngineError(c, err)
		return
	}
	h.broker.CloseTopic(pubsub.TopicScoreboard)
	util.Success(c, nil, "Competition ends")
}

func (h *Handler) listRankEvents(c *gin.Context) {
	rows, err := database.ListRankEvents(h.db)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err)
		return
	}
	util.Success(c, rows, "Rank events retrieved")
}

func (h *Handler) listSubmissions(c *gin.Context) {
	rows, err := database.ListAllSubmissions(h.db)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err)
		return
	}
	util.Success(c, rows, "Submissions retrieved")
}
