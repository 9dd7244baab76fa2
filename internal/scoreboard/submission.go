package scoreboard

// Outcome is the judgement result of a single submission.
type Outcome string

const (
	OutcomeAccepted        Outcome = "Accepted"
	OutcomeWrongAnswer     Outcome = "Wrong_Answer"
	OutcomeRuntimeError    Outcome = "Runtime_Error"
	OutcomeTimeLimitExceed Outcome = "Time_Limit_Exceed"
)

// ValidOutcome reports whether o belongs to the closed outcome set.
func ValidOutcome(o Outcome) bool {
	switch o {
	case OutcomeAccepted, OutcomeWrongAnswer, OutcomeRuntimeError, OutcomeTimeLimitExceed:
		return true
	}
	return false
}

// Submission is one judged attempt. Immutable once filed; owned by the
// ProblemRecord it was filed against.
type Submission struct {
	Problem byte    `json:"problem"`
	Outcome Outcome `json:"outcome"`
	Minute  int     `json:"minute"`
}
