package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScroll_EmitsBoundarySnapshots(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 1, "alpha", "beta")
	require.NoError(t, e.Freeze())
	require.NoError(t, e.Scroll())

	require.Len(t, rep.snapshots, 2)
	assert.True(t, rep.snapshots[0].Frozen, "first snapshot is the still-frozen view")
	assert.False(t, rep.snapshots[1].Frozen, "final snapshot is fully revealed")
	assert.Empty(t, rep.changes)

	// Terminal transition: the freeze flag is cleared, so an immediate
	// second scroll fails.
	assert.ErrorIs(t, e.Scroll(), ErrNotFrozen)
}

func TestScroll_WrongAttemptOnlyRevealEmitsNothing(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 2, "alpha", "zeta")

	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 10))
	require.NoError(t, e.Flush())

	require.NoError(t, e.Freeze())
	require.NoError(t, e.Submit('B', "zeta", OutcomeWrongAnswer, 150))
	// An accepted submission on an already-solved problem is ignored for
	// ranking even while frozen.
	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 160))

	rep.changes = nil
	require.NoError(t, e.Scroll())

	assert.Empty(t, rep.changes, "a reveal that solves nothing moves nobody")

	s := e.Snapshot()
	require.Equal(t, "zeta", s.Rows[1].Team)
	assert.Equal(t, 1, s.Rows[1].Cells[1].WrongAttempts, "revealed wrong attempt is counted")
	assert.Equal(t, 0, s.Rows[1].Cells[1].Pending)
	assert.Equal(t, 10, s.Rows[0].Penalty, "solved problem unaffected by late accept")
}

func TestScroll_NewSolveMovesTeamAndReportsOvertaken(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 2, "alpha", "beta", "gamma")

	require.NoError(t, e.Submit('A', "gamma", OutcomeAccepted, 10))
	require.NoError(t, e.Flush())

	require.NoError(t, e.Freeze())
	require.NoError(t, e.Submit('B', "beta", OutcomeAccepted, 100))

	rep.changes = nil
	require.NoError(t, e.Scroll())

	require.Len(t, rep.changes, 1)
	ev := rep.changes[0]
	assert.Equal(t, "beta", ev.Team)
	assert.Equal(t, "alpha", ev.Overtaken, "overtaken is the team now immediately below")
	assert.Equal(t, 1, ev.Solved)
	assert.Equal(t, 100, ev.Penalty)

	s := e.Snapshot()
	assert.Equal(t, []string{"gamma", "beta", "alpha"}, teamsOf(s))
}

func TestScroll_LowerRankedTeamRevealedFirst(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 2, "alpha", "beta", "gamma")

	require.NoError(t, e.Submit('A', "gamma", OutcomeAccepted, 10))
	require.NoError(t, e.Flush())

	require.NoError(t, e.Freeze())
	// Both pending reveals produce a new solve. beta sits below alpha, so
	// beta must be processed strictly first.
	require.NoError(t, e.Submit('B', "beta", OutcomeAccepted, 100))
	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 50))

	rep.changes = nil
	require.NoError(t, e.Scroll())

	require.Len(t, rep.changes, 2)
	assert.Equal(t, "beta", rep.changes[0].Team)
	assert.Equal(t, "alpha", rep.changes[1].Team)

	// alpha's cheaper solve ends up above beta's.
	s := e.Snapshot()
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, teamsOf(s))
}

func TestScroll_SmallestProblemRevealedFirstPerTeam(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 3, "alpha", "beta", "gamma", "delta")

	require.NoError(t, e.Submit('A', "delta", OutcomeAccepted, 5))
	require.NoError(t, e.Submit('B', "delta", OutcomeAccepted, 15))
	require.NoError(t, e.Submit('A', "gamma", OutcomeAccepted, 50))
	require.NoError(t, e.Submit('B', "beta", OutcomeAccepted, 80))
	require.NoError(t, e.Flush())

	require.NoError(t, e.Freeze())
	// alpha has two pending problems; only one problem is revealed per step
	// and 'A' must come before 'C'.
	require.NoError(t, e.Submit('C', "alpha", OutcomeAccepted, 100))
	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 60))

	rep.changes = nil
	require.NoError(t, e.Scroll())

	require.Len(t, rep.changes, 2)
	assert.Equal(t, RankChange{Team: "alpha", Overtaken: "beta", Solved: 1, Penalty: 60},
		rep.changes[0], "problem A reveals first, lifting alpha over beta")
	assert.Equal(t, RankChange{Team: "alpha", Overtaken: "gamma", Solved: 2, Penalty: 160},
		rep.changes[1], "problem C reveals second, lifting alpha over gamma")

	s := e.Snapshot()
	assert.Equal(t, []string{"delta", "alpha", "gamma", "beta"}, teamsOf(s))
}

func TestScroll_SolveWithoutPositionChangeEmitsNothing(t *testing.T) {
	rep := &capture{}
	e := startedEngine(t, rep, 2, "alpha", "beta")

	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 10))
	require.NoError(t, e.Flush())

	require.NoError(t, e.Freeze())
	// beta's reveal solves a problem but its aggregate still sorts below
	// alpha, so no event is emitted; the queue is consumed regardless.
	require.NoError(t, e.Submit('A', "beta", OutcomeAccepted, 200))

	rep.changes = nil
	require.NoError(t, e.Scroll())

	assert.Empty(t, rep.changes)
	s := e.Snapshot()
	assert.Equal(t, []string{"alpha", "beta"}, teamsOf(s))
	assert.Equal(t, 1, s.Rows[1].Solved)
}

func TestScroll_AcceptedSubmissionIsPermanent(t *testing.T) {
	e := startedEngine(t, nil, 1, "alpha")

	require.NoError(t, e.Freeze())
	require.NoError(t, e.Submit('A', "alpha", OutcomeAccepted, 50))
	require.NoError(t, e.Submit('A', "alpha", OutcomeWrongAnswer, 60))
	require.NoError(t, e.Scroll())

	s := e.Snapshot()
	assert.Equal(t, 1, s.Rows[0].Solved)
	assert.Equal(t, 50, s.Rows[0].Penalty)
	assert.Equal(t, 0, s.Rows[0].Cells[0].WrongAttempts,
		"attempts after the accepted one in the same batch are ignored")

	// Nothing after the reveal can unsolve it either.
	require.NoError(t, e.Submit('A', "alpha", OutcomeWrongAnswer, 70))
	require.NoError(t, e.Flush())
	s = e.Snapshot()
	assert.Equal(t, 1, s.Rows[0].Solved)
	assert.Equal(t, 50, s.Rows[0].Penalty)
}

func teamsOf(s *Snapshot) []string {
	teams := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		teams = append(teams, row.Team)
	}
	return teams
}
