// Package config loads and validates a spacesearch run description.
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Strategy names accepted by Config.Strategy.
const (
	BFS    = "bfs"
	DFS    = "dfs"
	Guided = "guided"
	AStar  = "astar"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrUnbounded is returned for a search without deduplication or budget,
	// which can loop forever on a grid.
	ErrUnbounded = errors.New("config: non-hashable search needs max_expansions > 0")
)

var validate = validator.New()

// Config describes one search run over a text maze.
type Config struct {
	// Maze rows in gridspace.ParseMaze syntax.
	Maze []string `yaml:"maze" validate:"required,min=1,dive,required"`

	// Strategy is one of bfs, dfs, guided, astar.
	Strategy string `yaml:"strategy" validate:"required,oneof=bfs dfs guided astar"`

	// Route reports full paths instead of end points.
	Route bool `yaml:"route"`

	// Hashable turns on the visited set.
	Hashable bool `yaml:"hashable"`

	// Connectivity is 4 or 8.
	Connectivity int `yaml:"connectivity" validate:"oneof=4 8"`

	// MaxExpansions bounds the search; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`

	// Solutions is how many results to pull.
	Solutions int `yaml:"solutions" validate:"gte=1,lte=1000"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns a hashable A* route search over 4-connectivity.
// Maze is left empty.
func Default() Config {
	return Config{
		Strategy:     AStar,
		Route:        true,
		Hashable:     true,
		Connectivity: 4,
		Solutions:    1,
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path over Default. It does not validate.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints and the termination rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.Hashable && c.MaxExpansions == 0 {
		return ErrUnbounded
	}

	return nil
}

// ReadMaze reads maze rows from r, dropping trailing blank lines and
// carriage returns.
func ReadMaze(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read maze: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

// LoadMaze reads maze rows from the file at path.
func LoadMaze(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open maze: %w", err)
	}
	defer f.Close()

	return ReadMaze(f)
}
