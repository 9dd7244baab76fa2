package contest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeContest(t, `
name: "Winter Invitational"
duration_minutes: 300
problem_count: 5
teams:
  - alpha
  - beta
  - gamma
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Winter Invitational", c.Name)
	assert.Equal(t, 300, c.DurationMinutes)
	assert.Equal(t, 5, c.ProblemCount)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, c.Teams)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeContest(t, "name: x\nduration_minutes: 300\nproblem_count: 0\n"))
	assert.ErrorContains(t, err, "problem_count")

	_, err = Load(writeContest(t, "name: x\nduration_minutes: 0\nproblem_count: 3\n"))
	assert.ErrorContains(t, err, "duration_minutes")
}

func TestApply(t *testing.T) {
	c := &Contest{
		Name:            "test",
		DurationMinutes: 120,
		ProblemCount:    2,
		// Duplicate entries are skipped, not fatal.
		Teams: []string{"alpha", "beta", "alpha"},
	}

	engine := scoreboard.NewEngine(nil)
	require.NoError(t, Apply(c, engine))

	assert.True(t, engine.Started())
	rank, _, err := engine.RankOf("beta")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}

func TestApply_AlreadyStarted(t *testing.T) {
	engine := scoreboard.NewEngine(nil)
	require.NoError(t, engine.Start(60, 1))

	c := &Contest{Name: "late", DurationMinutes: 60, ProblemCount: 1, Teams: []string{"alpha"}}
	assert.Error(t, Apply(c, engine))
}
