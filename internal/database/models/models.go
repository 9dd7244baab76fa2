package models

import "time"

// SubmissionRow is the append-only audit record of one judged attempt as it
// arrived, including attempts queued during a freeze. The engine never reads
// this table back; it exists for operators and post-contest review.
type SubmissionRow struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	Team    string `gorm:"index" json:"team"`
	Problem string `gorm:"index" json:"problem"`
	Outcome string `json:"outcome"`
	Minute  int    `json:"minute"`
	Frozen  bool   `json:"frozen"`
}

// RankEventRow records one rank change emitted during a scroll.
type RankEventRow struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time

	Team      string `gorm:"index" json:"team"`
	Overtaken string `json:"overtaken"`
	Solved    int    `json:"solved"`
	Penalty   int    `json:"penalty"`
}
