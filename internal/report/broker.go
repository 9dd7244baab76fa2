package report

import (
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"
)

// Publisher streams rank changes and snapshots to websocket clients through
// the in-memory broker.
type Publisher struct {
	broker *pubsub.Broker
}

func NewPublisher(broker *pubsub.Broker) *Publisher {
	return &Publisher{broker: broker}
}

func (p *Publisher) RankChange(ev scoreboard.RankChange) {
	p.broker.Publish(pubsub.TopicScoreboard, pubsub.Format(pubsub.StreamRankChange, ev))
}

func (p *Publisher) Snapshot(s *scoreboard.Snapshot) {
	p.broker.Publish(pubsub.TopicScoreboard, pubsub.Format(pubsub.StreamSnapshot, s))
}
