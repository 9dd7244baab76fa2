package scoreboard

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// maxProblems bounds the alphabet-indexed problem range 'A'..'Z'.
const maxProblems = 26

// Engine owns all contest state: the team table, the current ranking and the
// freeze flag. Public methods serialize through one mutex, so directives are
// processed strictly one at a time in arrival order.
type Engine struct {
	mu sync.Mutex

	teams   map[string]*Team
	ranking []string

	started      bool
	frozen       bool
	ended        bool
	duration     int
	problemCount int

	reporter ScoreChangeReporter
}

// NewEngine creates an engine that delivers rank changes and snapshots to
// reporter. A nil reporter discards them.
func NewEngine(reporter ScoreChangeReporter) *Engine {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Engine{
		teams:    make(map[string]*Team),
		reporter: reporter,
	}
}

// AddTeam registers a team. Only valid before Start.
func (e *Engine) AddTeam(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if e.started {
		return ErrStarted
	}
	if _, ok := e.teams[name]; ok {
		return ErrDuplicateTeam
	}
	e.teams[name] = newTeam(name)
	e.ranking = append(e.ranking, name)
	sort.Strings(e.ranking)
	return nil
}

// Start begins the competition with the given duration in minutes and number
// of problems (labelled 'A' onwards). Every (team, problem) record is created
// here; the initial ranking is team-name order.
func (e *Engine) Start(durationMinutes, problemCount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if e.started {
		return ErrStarted
	}
	if problemCount < 1 || problemCount > maxProblems {
		return ErrProblemNotFound
	}
	e.started = true
	e.duration = durationMinutes
	e.problemCount = problemCount
	for _, t := range e.teams {
		t.initProblems(problemCount)
	}
	zap.S().Infof("competition started: %d minutes, %d problems, %d teams",
		durationMinutes, problemCount, len(e.teams))
	return nil
}

// Submit files one judged attempt. While frozen, submissions on unsolved
// problems are queued for the next Scroll instead of mutating state.
// Submissions to an already-solved problem are recorded for audit only.
// The ranking is never recomputed here.
func (e *Engine) Submit(problem byte, team string, outcome Outcome, minute int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if !e.started {
		return ErrNotStarted
	}
	t, ok := e.teams[team]
	if !ok {
		return ErrTeamNotFound
	}
	idx := int(problem - 'A')
	if idx < 0 || idx >= e.problemCount {
		return ErrProblemNotFound
	}
	if !ValidOutcome(outcome) {
		return ErrInvalidOutcome
	}

	sub := Submission{Problem: problem, Outcome: outcome, Minute: minute}
	r := t.record(idx)
	r.Submissions = append(r.Submissions, sub)

	switch {
	case r.Solved:
		// audit only
	case e.frozen:
		r.deferFrozen(sub)
	default:
		r.apply(sub)
		t.invalidate()
	}
	return nil
}

// Flush discards the current ranking and fully re-sorts all teams on their
// current (non-pending) aggregates.
func (e *Engine) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if !e.started {
		return ErrNotStarted
	}
	e.sortRanking()
	e.reporter.Snapshot(e.snapshot())
	return nil
}

// Freeze suspends public visibility of new outcomes on unsolved problems.
func (e *Engine) Freeze() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if !e.started {
		return ErrNotStarted
	}
	if e.frozen {
		return ErrFrozen
	}
	e.frozen = true
	zap.S().Info("scoreboard frozen")
	return nil
}

// Scroll reveals all pending frozen submissions, lowest-ranked team first,
// one problem (the smallest letter) per step. A reveal that newly solves a
// problem moves the team up to its correct position and reports the move;
// wrong-attempt-only reveals change nothing and report nothing. Emits a
// still-frozen snapshot before the reveal loop and a final one after, and
// clears the freeze flag.
func (e *Engine) Scroll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	if !e.frozen {
		return ErrNotFrozen
	}
	zap.S().Info("scrolling scoreboard")

	e.sortRanking()
	e.reporter.Snapshot(e.snapshot())

	for {
		team, idx, ok := e.nextReveal()
		if !ok {
			break
		}
		if !team.record(idx).reveal() {
			continue
		}
		team.invalidate()
		e.promote(team)
	}

	e.frozen = false
	e.reporter.Snapshot(e.snapshot())
	return nil
}

// nextReveal scans from the lowest current rank upward and returns the first
// team holding pending submissions together with its smallest pending problem
// index. The scan restarts from the bottom after every reveal.
func (e *Engine) nextReveal() (*Team, int, bool) {
	for i := len(e.ranking) - 1; i >= 0; i-- {
		t := e.teams[e.ranking[i]]
		for idx := 0; idx < e.problemCount; idx++ {
			if t.record(idx).Pending() > 0 {
				return t, idx, true
			}
		}
	}
	return nil, 0, false
}

// promote walks the newly-solved team upward through the ranking while it
// compares better than the team immediately above, then reports the move if
// its position actually changed.
func (e *Engine) promote(t *Team) {
	old := e.position(t.Name)
	pos := old
	for pos > 0 && Less(t, e.teams[e.ranking[pos-1]]) {
		pos--
	}
	if pos == old {
		return
	}
	copy(e.ranking[pos+1:old+1], e.ranking[pos:old])
	e.ranking[pos] = t.Name
	e.reporter.RankChange(RankChange{
		Team:      t.Name,
		Overtaken: e.ranking[pos+1],
		Solved:    t.SolvedCount(),
		Penalty:   t.PenaltyTime(),
	})
}

// End marks the competition finished. Further mutating directives fail with
// ErrEnded; queries keep working.
func (e *Engine) End() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ended {
		return ErrEnded
	}
	e.ended = true
	zap.S().Info("competition ended")
	return nil
}

// RankOf returns the team's 1-based position in the current ranking. The
// second result warns that the scoreboard is frozen and the rank may not
// reflect unrevealed results.
func (e *Engine) RankOf(team string) (int, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.teams[team]; !ok {
		return 0, e.frozen, ErrTeamNotFound
	}
	return e.position(team) + 1, e.frozen, nil
}

// LastSubmission returns the team's most recent submission matching the
// filters, searching the full audit trail including frozen submissions.
// problem 0 matches any problem; outcome "" matches any outcome. A nil
// result without error means nothing matched.
func (e *Engine) LastSubmission(team string, problem byte, outcome Outcome) (*Submission, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.teams[team]
	if !ok {
		return nil, ErrTeamNotFound
	}
	var best *Submission
	for idx := 0; idx < e.problemCount; idx++ {
		if problem != 0 && int(problem-'A') != idx {
			continue
		}
		for i := range t.record(idx).Submissions {
			sub := &t.record(idx).Submissions[i]
			if outcome != "" && sub.Outcome != outcome {
				continue
			}
			if best == nil || sub.Minute > best.Minute {
				best = sub
			}
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

// Snapshot returns a copy of the current board without re-sorting.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Started reports whether the competition is running.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// Frozen reports whether the scoreboard is currently frozen.
func (e *Engine) Frozen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frozen
}

func (e *Engine) position(team string) int {
	for i, name := range e.ranking {
		if name == team {
			return i
		}
	}
	return -1
}

func (e *Engine) sortRanking() {
	sort.SliceStable(e.ranking, func(i, j int) bool {
		return Less(e.teams[e.ranking[i]], e.teams[e.ranking[j]])
	})
}

func (e *Engine) snapshot() *Snapshot {
	s := &Snapshot{Frozen: e.frozen, Rows: make([]Row, 0, len(e.ranking))}
	for i, name := range e.ranking {
		t := e.teams[name]
		row := Row{
			Team:    name,
			Rank:    i + 1,
			Solved:  t.SolvedCount(),
			Penalty: t.PenaltyTime(),
			Cells:   make([]Cell, 0, e.problemCount),
		}
		for idx := 0; idx < e.problemCount; idx++ {
			row.Cells = append(row.Cells, cellFor(byte('A'+idx), t.record(idx), e.frozen))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
