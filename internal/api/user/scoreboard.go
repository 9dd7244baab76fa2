package user

import (
	"fmt"
	"net/http"

	"github.com/ZJUSCT/CSRANK/internal/database"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
	"github.com/ZJUSCT/CSRANK/internal/util"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getContest(c *gin.Context) {
	if h.contest == nil {
		util.Success(c, gin.H{"started": h.engine.Started()}, "No contest definition loaded")
		return
	}
	util.Success(c, gin.H{
		"name":             h.contest.Name,
		"duration_minutes": h.contest.DurationMinutes,
		"problem_count":    h.contest.ProblemCount,
		"started":          h.engine.Started(),
		"frozen":           h.engine.Frozen(),
	}, "Contest found")
}

// getScoreboard returns the current board without re-sorting. While frozen,
// cells with unrevealed submissions show up as hidden.
func (h *Handler) getScoreboard(c *gin.Context) {
	util.Success(c, h.engine.Snapshot(), "Scoreboard retrieved")
}

func (h *Handler) getTeamRank(c *gin.Context) {
	name := c.Param("name")
	rank, frozen, err := h.engine.RankOf(name)
	if err != nil {
		util.EngineError(c, err)
		return
	}
	msg := "Rank retrieved"
	if frozen {
		msg = "Rank retrieved; scoreboard is frozen, the ranking may be inaccurate until it is scrolled"
	}
	util.Success(c, gin.H{"team": name, "rank": rank, "frozen": frozen}, msg)
}

// getLastSubmission serves the most-recent-match query over the full audit
// trail. No match is a normal result, not an error.
func (h *Handler) getLastSubmission(c *gin.Context) {
	name := c.Param("name")

	var problem byte
	if p := c.Query("problem"); p != "" {
		if len(p) != 1 || p[0] < 'A' || p[0] > 'Z' {
			util.Error(c, http.StatusBadRequest, fmt.Errorf("invalid problem filter %q", p))
			return
		}
		problem = p[0]
	}
	outcome := scoreboard.Outcome(c.Query("outcome"))
	if outcome != "" && !scoreboard.ValidOutcome(outcome) {
		util.Error(c, http.StatusBadRequest, fmt.Errorf("invalid outcome filter %q", outcome))
		return
	}

	sub, err := h.engine.LastSubmission(name, problem, outcome)
	if err != nil {
		util.EngineError(c, err)
		return
	}
	if sub == nil {
		util.Success(c, nil, "Cannot find any submission")
		return
	}
	util.Success(c, gin.H{
		"team":    name,
		"problem": string(sub.Problem),
		"outcome": sub.Outcome,
		"minute":  sub.Minute,
	}, "Submission found")
}

// getTeamSubmissions lists the team's audit log from the database, in
// submission order.
func (h *Handler) getTeamSubmissions(c *gin.Context) {
	name := c.Param("name")
	if _, _, err := h.engine.RankOf(name); err != nil {
		util.EngineError(c, err)
		return
	}
	rows, err := database.ListSubmissionsByTeam(h.db, name)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err)
		return
	}
	util.Success(c, rows, "Submissions retrieved")
}
