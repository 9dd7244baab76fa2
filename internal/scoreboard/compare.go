package scoreboard

// Less reports whether team a ranks strictly ahead of team b.
//
// Ordering keys, in priority: solved count descending, penalty time
// ascending, then the descending-sorted solve-time lists compared position by
// position (first differing position, smaller time wins), and finally team
// name ascending as the deterministic tie-break.
func Less(a, b *Team) bool {
	if a.SolvedCount() != b.SolvedCount() {
		return a.SolvedCount() > b.SolvedCount()
	}
	if a.PenaltyTime() != b.PenaltyTime() {
		return a.PenaltyTime() < b.PenaltyTime()
	}

	ta, tb := a.SolveTimes(), b.SolveTimes()
	n := len(ta)
	if len(tb) < n {
		n = len(tb)
	}
	for i := 0; i < n; i++ {
		if ta[i] != tb[i] {
			return ta[i] < tb[i]
		}
	}

	return a.Name < b.Name
}
