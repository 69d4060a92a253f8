package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Sentinel errors.
var (
	// ErrParse indicates a document that is not valid scenario YAML.
	ErrParse = errors.New("scenario: parse")
	// ErrNoName indicates a scenario without a name.
	ErrNoName = errors.New("scenario: name is required")
	// ErrBadMap indicates an unknown map symbol or a bad marker count.
	ErrBadMap = errors.New("scenario: bad map")
	// ErrNoEndpoint indicates a missing start or goal.
	ErrNoEndpoint = errors.New("scenario: start and goal are required")
	// ErrUnknown indicates a name not present in a Catalog.
	ErrUnknown = errors.New("scenario: unknown scenario")
	// ErrDuplicate indicates a second scenario with an existing name.
	ErrDuplicate = errors.New("scenario: duplicate name")
)

// Scenario is one decoded document.
type Scenario struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Map         []string `yaml:"map" json:"map"`
	Start       []int    `yaml:"start,omitempty" json:"start,omitempty"`
	Goal        []int    `yaml:"goal,omitempty" json:"goal,omitempty"`

	// Connectivity is "conn4", "conn6" (default) or "conn8".
	Connectivity   string  `yaml:"connectivity,omitempty" json:"connectivity,omitempty"`
	OrthogonalCost float64 `yaml:"orthogonal_cost,omitempty" json:"orthogonal_cost,omitempty"`
	DiagonalCost   float64 `yaml:"diagonal_cost,omitempty" json:"diagonal_cost,omitempty"`

	// DepthLimit is the DLS limit; nil keeps the engine default. Zero is a
	// valid limit.
	DepthLimit *int `yaml:"depth_limit,omitempty" json:"depth_limit,omitempty"`
	// IterationCeiling is the largest IDDFS limit; 0 keeps the default.
	IterationCeiling int `yaml:"iteration_ceiling,omitempty" json:"iteration_ceiling,omitempty"`
}

// Parse decodes one YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if strings.TrimSpace(s.Name) == "" {
		return nil, ErrNoName
	}

	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Build converts the map into a grid.Grid.
func (s *Scenario) Build() (*grid.Grid, error) {
	cells, start, goal, err := parseMap(s.Map)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	if s.Start != nil {
		if start, err = pair(s.Start); err != nil {
			return nil, fmt.Errorf("%s: start: %w", s.Name, err)
		}
	}
	if s.Goal != nil {
		if goal, err = pair(s.Goal); err != nil {
			return nil, fmt.Errorf("%s: goal: %w", s.Name, err)
		}
	}
	if start == nil || goal == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEndpoint, s.Name)
	}

	conn, err := grid.ParseConnectivity(s.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	opts := []grid.Option{grid.WithConnectivity(conn)}
	if s.OrthogonalCost != 0 || s.DiagonalCost != 0 {
		orth, diag := s.OrthogonalCost, s.DiagonalCost
		if orth == 0 {
			orth = grid.DefaultOrthogonalCost
		}
		if diag == 0 {
			diag = grid.DefaultDiagonalCost
		}
		opts = append(opts, grid.WithCosts(orth, diag))
	}

	g, err := grid.New(cells, *start, *goal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	return g, nil
}

// SearchOptions returns the engine options the scenario sets.
func (s *Scenario) SearchOptions() []search.Option {
	var opts []search.Option
	if s.DepthLimit != nil {
		opts = append(opts, search.WithDepthLimit(*s.DepthLimit))
	}
	if s.IterationCeiling != 0 {
		opts = append(opts, search.WithMaxIterativeDepth(s.IterationCeiling))
	}

	return opts
}

func pair(v []int) (*grid.Coordinate, error) {
	if len(v) != 2 {
		return nil, fmt.Errorf("%w: want [row, col], got %v", ErrBadMap, v)
	}
	c := grid.At(v[0], v[1])

	return &c, nil
}

// parseMap turns map rows into cells and any S/G markers.
func parseMap(rows []string) (cells [][]int, start, goal *grid.Coordinate, err error) {
	cells = make([][]int, 0, len(rows))
	for r, line := range rows {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			at := grid.At(r, len(row))
			switch ch {
			case ' ', '\t':
				continue
			case '.', '0':
				row = append(row, 0)
			case '#', '1':
				row = append(row, 1)
			case 'S', 's':
				if start != nil {
					return nil, nil, nil, fmt.Errorf("%w: second start marker at %v", ErrBadMap, at)
				}
				start = &at
				row = append(row, 0)
			case 'G', 'g':
				if goal != nil {
					return nil, nil, nil, fmt.Errorf("%w: second goal marker at %v", ErrBadMap, at)
				}
				goal = &at
				row = append(row, 0)
			default:
				return nil, nil, nil, fmt.Errorf("%w: symbol %q at %v", ErrBadMap, ch, at)
			}
		}
		cells = append(cells, row)
	}

	return cells, start, goal, nil
}
