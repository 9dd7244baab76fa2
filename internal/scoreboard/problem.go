package scoreboard

// penaltyPerWrong is the standard ICPC 20-minute penalty for every rejected
// attempt on a problem that is eventually solved.
const penaltyPerWrong = 20

// ProblemRecord tracks one team's state on one problem. Submissions is the
// full audit trail; pendingFrozen holds submissions received while the
// scoreboard is frozen and the problem is still unsolved.
type ProblemRecord struct {
	Solved        bool
	SolveTime     int
	WrongAttempts int
	Submissions   []Submission

	pendingFrozen []Submission
}

// Pending returns the number of submissions waiting to be revealed.
func (r *ProblemRecord) Pending() int {
	return len(r.pendingFrozen)
}

// apply folds one submission into the solve/wrong-attempt state. Submissions
// after the first accepted one never change SolveTime or WrongAttempts.
// Returns true if the problem became solved by this submission.
func (r *ProblemRecord) apply(sub Submission) bool {
	if r.Solved {
		return false
	}
	if sub.Outcome == OutcomeAccepted {
		r.Solved = true
		r.SolveTime = sub.Minute
		return true
	}
	r.WrongAttempts++
	return false
}

// deferFrozen appends a frozen-period submission to the pending queue.
func (r *ProblemRecord) deferFrozen(sub Submission) {
	r.pendingFrozen = append(r.pendingFrozen, sub)
}

// reveal replays the pending queue in arrival order and clears it.
// Returns true if the problem became newly solved.
func (r *ProblemRecord) reveal() bool {
	solved := false
	for _, sub := range r.pendingFrozen {
		if r.apply(sub) {
			solved = true
		}
	}
	r.pendingFrozen = nil
	return solved
}
