package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacesearch/internal/config"
)

const sample = `
strategy: bfs
route: false
hashable: true
connectivity: 8
max_expansions: 500
solutions: 2
maze:
  - "S.#"
  - "..G"
`

func TestParse_OverDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.BFS, cfg.Strategy)
	assert.False(t, cfg.Route)
	assert.Equal(t, 8, cfg.Connectivity)
	assert.Equal(t, 500, cfg.MaxExpansions)
	assert.Equal(t, 2, cfg.Solutions)
	assert.Equal(t, []string{"S.#", "..G"}, cfg.Maze)
	assert.Equal(t, "info", cfg.LogLevel, "kept from Default")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("stratgy: bfs\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := config.Default()
	base.Maze = []string{"SG"}
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*config.Config)
		err    error
	}{
		{"NoMaze", func(c *config.Config) { c.Maze = nil }, config.ErrInvalid},
		{"EmptyRow", func(c *config.Config) { c.Maze = []string{""} }, config.ErrInvalid},
		{"Strategy", func(c *config.Config) { c.Strategy = "ida" }, config.ErrInvalid},
		{"Connectivity", func(c *config.Config) { c.Connectivity = 6 }, config.ErrInvalid},
		{"NegativeBudget", func(c *config.Config) { c.MaxExpansions = -1 }, config.ErrInvalid},
		{"ZeroSolutions", func(c *config.Config) { c.Solutions = 0 }, config.ErrInvalid},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrInvalid},
		{"Unbounded", func(c *config.Config) { c.Hashable = false }, config.ErrUnbounded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			cfg.Maze = append([]string(nil), base.Maze...)
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}

	bounded := base
	bounded.Hashable = false
	bounded.MaxExpansions = 10
	assert.NoError(t, bounded.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BFS, cfg.Strategy)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReadMaze(t *testing.T) {
	rows, err := config.ReadMaze(strings.NewReader("S.#\r\n..G\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S.#", "..G"}, rows)

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("SG\n"), 0o600))
	rows, err = config.LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SG"}, rows)
}
