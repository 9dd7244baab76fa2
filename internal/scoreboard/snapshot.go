package scoreboard

import "fmt"

// CellStatus classifies one problem cell on the public board.
type CellStatus string

const (
	CellUnattempted CellStatus = "unattempted"
	CellSolved      CellStatus = "solved"
	CellFailed      CellStatus = "failed"
	// CellFrozen appears only while the scoreboard is frozen and the problem
	// has pending unrevealed submissions.
	CellFrozen CellStatus = "frozen"
)

// Cell is the public display state of one (team, problem) pair.
type Cell struct {
	Problem       string     `json:"problem"`
	Status        CellStatus `json:"status"`
	WrongAttempts int        `json:"wrong_attempts"`
	Pending       int        `json:"pending"`
}

// String renders the conventional board notation: "+", "+3", ".", "-2" and
// "-2/3" (or "0/3") for frozen cells.
func (c Cell) String() string {
	switch c.Status {
	case CellFrozen:
		if c.WrongAttempts == 0 {
			return fmt.Sprintf("0/%d", c.Pending)
		}
		return fmt.Sprintf("-%d/%d", c.WrongAttempts, c.Pending)
	case CellSolved:
		if c.WrongAttempts == 0 {
			return "+"
		}
		return fmt.Sprintf("+%d", c.WrongAttempts)
	case CellFailed:
		return fmt.Sprintf("-%d", c.WrongAttempts)
	default:
		return "."
	}
}

// Row is one ranked line of a Snapshot.
type Row struct {
	Team    string `json:"team"`
	Rank    int    `json:"rank"`
	Solved  int    `json:"solved"`
	Penalty int    `json:"penalty"`
	Cells   []Cell `json:"cells"`
}

// Snapshot is a full ranking view, ordered best first. Frozen marks a view
// taken while unrevealed submissions may still exist.
type Snapshot struct {
	Frozen bool  `json:"frozen"`
	Rows   []Row `json:"rows"`
}

// RankChange reports one team moving up during a scroll. Overtaken is the
// team now placed immediately below the moved team.
type RankChange struct {
	Team      string `json:"team"`
	Overtaken string `json:"overtaken"`
	Solved    int    `json:"solved"`
	Penalty   int    `json:"penalty"`
}

// ScoreChangeReporter receives every rank change produced while scrolling and
// a full snapshot on every flush-equivalent materialization.
type ScoreChangeReporter interface {
	RankChange(RankChange)
	Snapshot(*Snapshot)
}

type nopReporter struct{}

func (nopReporter) RankChange(RankChange) {}
func (nopReporter) Snapshot(*Snapshot)    {}

func cellFor(problem byte, r *ProblemRecord, frozen bool) Cell {
	c := Cell{
		Problem:       string(problem),
		WrongAttempts: r.WrongAttempts,
		Pending:       r.Pending(),
	}
	switch {
	case frozen && !r.Solved && r.Pending() > 0:
		c.Status = CellFrozen
	case r.Solved:
		c.Status = CellSolved
	case r.WrongAttempts > 0:
		c.Status = CellFailed
	default:
		c.Status = CellUnattempted
	}
	return c
}
