// Package report provides the ScoreChangeReporter implementations wired
// behind the scoreboard engine: live pub/sub publishing, database audit
// recording and the optional redis standings mirror.
package report

import "github.com/ZJUSCT/CSRANK/internal/scoreboard"

// Multi fans every event out to all given reporters in order.
func Multi(reporters ...scoreboard.ScoreChangeReporter) scoreboard.ScoreChangeReporter {
	return multi(reporters)
}

type multi []scoreboard.ScoreChangeReporter

func (m multi) RankChange(ev scoreboard.RankChange) {
	for _, r := range m {
		r.RankChange(ev)
	}
}

func (m multi) Snapshot(s *scoreboard.Snapshot) {
	for _, r := range m {
		r.Snapshot(s)
	}
}
