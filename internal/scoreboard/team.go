package scoreboard

import "sort"

// Team owns one ProblemRecord per contest problem, indexed by problem letter
// offset. Aggregate values (solved count, penalty, solve times) are cached
// and lazily recomputed after any record mutation.
type Team struct {
	Name    string
	records []*ProblemRecord

	cacheValid bool
	solved     int
	penalty    int
	solveTimes []int // descending
}

func newTeam(name string) *Team {
	return &Team{Name: name}
}

func (t *Team) initProblems(count int) {
	t.records = make([]*ProblemRecord, count)
	for i := range t.records {
		t.records[i] = &ProblemRecord{}
	}
	t.cacheValid = false
}

// record returns the ProblemRecord for a zero-based problem index.
func (t *Team) record(idx int) *ProblemRecord {
	return t.records[idx]
}

func (t *Team) invalidate() {
	t.cacheValid = false
}

// refresh rebuilds the cached aggregate from the problem records. The cache
// reflects only completed mutations; pending frozen submissions are invisible
// until revealed.
func (t *Team) refresh() {
	if t.cacheValid {
		return
	}
	t.solved = 0
	t.penalty = 0
	t.solveTimes = t.solveTimes[:0]
	for _, r := range t.records {
		if !r.Solved {
			continue
		}
		t.solved++
		t.penalty += r.SolveTime + penaltyPerWrong*r.WrongAttempts
		t.solveTimes = append(t.solveTimes, r.SolveTime)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.solveTimes)))
	t.cacheValid = true
}

// SolvedCount returns the number of solved problems.
func (t *Team) SolvedCount() int {
	t.refresh()
	return t.solved
}

// PenaltyTime returns the total penalty over solved problems.
func (t *Team) PenaltyTime() int {
	t.refresh()
	return t.penalty
}

// SolveTimes returns the solve timestamps sorted descending. The returned
// slice is the cache itself; callers must not modify it.
func (t *Team) SolveTimes() []int {
	t.refresh()
	return t.solveTimes
}
