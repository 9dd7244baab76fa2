package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Mirror keeps the current standings in a redis sorted set so external
// consumers get O(log n) rank lookups without touching the engine. The
// mirror is advisory: write failures are logged, never propagated.
type Mirror struct {
	client *redis.Client
	key    string
}

func NewMirror(cfg config.Redis) *Mirror {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "csrank"
	}
	return &Mirror{
		client: client,
		key:    fmt.Sprintf("%s:standings", prefix),
	}
}

func (m *Mirror) RankChange(scoreboard.RankChange) {}

// Snapshot rewrites the sorted set in one transaction: member is the team
// name, score is the current rank (1 is best).
func (m *Mirror) Snapshot(s *scoreboard.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	members := make([]*redis.Z, 0, len(s.Rows))
	for _, row := range s.Rows {
		members = append(members, &redis.Z{
			Score:  float64(row.Rank),
			Member: row.Team,
		})
	}

	pipe := m.client.TxPipeline()
	pipe.Del(ctx, m.key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, m.key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		zap.S().Errorf("failed to mirror standings to redis: %v", err)
	}
}

// Close releases the redis connection.
func (m *Mirror) Close() error {
	return m.client.Close()
}
