package pubsub

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// TopicScoreboard carries the live scoreboard stream: rank-change events
// during a scroll and snapshot notices on every flush.
const TopicScoreboard = "scoreboard"

// Stream type tags used in Message.
const (
	StreamSnapshot   = "snapshot"
	StreamRankChange = "rank_change"
)

// Message is the wire envelope delivered to websocket subscribers.
type Message struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

// Broker is a simple in-memory pub/sub system. Messages published to a topic
// are cached so that late subscribers replay the full history of the stream
// (a client connecting mid-scroll still sees every rank change).
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan []byte
	cache       map[string][][]byte
}

func New() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan []byte),
		cache:       make(map[string][][]byte),
	}
}

// Subscribe subscribes to a topic. Cached history is sent to the new
// subscriber first, then live messages follow.
func (b *Broker) Subscribe(topic string) (<-chan []byte, func()) {
	b.mu.Lock()

	ch := make(chan []byte, 128)

	// Snapshot of the history is taken inside the lock; actual sending
	// happens in a goroutine so the broker is never blocked.
	history := b.cache[topic]

	go func() {
		for _, msg := range history {
			ch <- msg
		}
	}()

	b.subscribers[topic] = append(b.subscribers[topic], ch)
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subscribers := b.subscribers[topic]
		for i, sub := range subscribers {
			if sub == ch {
				b.subscribers[topic] = append(subscribers[:i], subscribers[i+1:]...)
				close(ch)
				break
			}
		}
		zap.S().Debugf("unsubscribed from topic %s", topic)
	}

	zap.S().Debugf("new subscription to topic %s, sent %d cached messages", topic, len(history))
	return ch, unsubscribe
}

// Publish publishes a message to all subscribers of a topic and caches it.
// Delivery to live subscribers is non-blocking: a slow client drops messages
// rather than stalling the publisher.
func (b *Broker) Publish(topic string, msg []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache[topic] = append(b.cache[topic], msg)

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
		}
	}
}

// CloseTopic closes all subscriber channels and clears the cache for a topic.
// Called when the competition ends.
func (b *Broker) CloseTopic(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subscribers, ok := b.subscribers[topic]; ok {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
	delete(b.cache, topic)
	zap.S().Infof("closed pubsub topic %s and cleared cache", topic)
}

// Format wraps a payload in the wire envelope.
func Format(stream string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return []byte(`{"stream":"error","data":null}`)
	}
	msg, err := json.Marshal(Message{Stream: stream, Data: data})
	if err != nil {
		return []byte(`{"stream":"error","data":null}`)
	}
	return msg
}
