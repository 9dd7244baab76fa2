package contest

import (
	"fmt"
	"os"

	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Contest is the static definition of one competition, loaded from
// contest.yaml before the event.
type Contest struct {
	Name            string   `yaml:"name" json:"name"`
	DurationMinutes int      `yaml:"duration_minutes" json:"duration_minutes"`
	ProblemCount    int      `yaml:"problem_count" json:"problem_count"`
	Teams           []string `yaml:"teams" json:"teams"`
}

// Load parses a contest definition file.
func Load(path string) (*Contest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Contest
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.ProblemCount < 1 {
		return nil, fmt.Errorf("contest %q: problem_count must be positive", c.Name)
	}
	if c.DurationMinutes < 1 {
		return nil, fmt.Errorf("contest %q: duration_minutes must be positive", c.Name)
	}
	return &c, nil
}

// Apply registers the contest's teams on the engine and starts the
// competition. Duplicate team names in the file are skipped with a warning.
func Apply(c *Contest, engine *scoreboard.Engine) error {
	for _, name := range c.Teams {
		if err := engine.AddTeam(name); err != nil {
			if err == scoreboard.ErrDuplicateTeam {
				zap.S().Warnf("contest %q: duplicate team %q skipped", c.Name, name)
				continue
			}
			return fmt.Errorf("add team %q: %w", name, err)
		}
	}
	if err := engine.Start(c.DurationMinutes, c.ProblemCount); err != nil {
		return fmt.Errorf("start contest %q: %w", c.Name, err)
	}
	zap.S().Infof("loaded contest %q: %d teams, %d problems, %d minutes",
		c.Name, len(c.Teams), c.ProblemCount, c.DurationMinutes)
	return nil
}
