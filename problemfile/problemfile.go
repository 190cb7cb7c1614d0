package problemfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/hanoi"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/maze"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/sat"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// Sentinel errors for problem files.
var (
	// ErrUnknownProblem is returned for an unrecognized problem kind.
	ErrUnknownProblem = errors.New("problemfile: unknown problem kind")

	// ErrMissingParameter is returned when a required parameter is absent.
	ErrMissingParameter = errors.New("problemfile: missing parameter")
)

// Kind names a problem family.
type Kind string

// Supported problem kinds.
const (
	KindMaze  Kind = "maze"
	KindSAT   Kind = "sat"
	KindHanoi Kind = "hanoi"
)

// Spec is the persisted description of one problem instance: the kind and
// its generation parameters.
type Spec struct {
	Problem    Kind           `yaml:"problem"`
	Parameters map[string]int `yaml:"parameters"`
}

// Save writes spec to path as YAML.
func Save(path string, spec Spec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("problemfile: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("problemfile: write %q: %w", path, err)
	}

	return nil
}

// Load reads a Spec from path.
func Load(path string) (Spec, error) {
	var spec Spec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("problemfile: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("problemfile: parse %q: %w", path, err)
	}

	return spec, nil
}

// Root dispatches to the kind's generator and returns the root state.
// Generator validation errors propagate unwrapped for errors.Is branching.
func (s Spec) Root() (search.State, error) {
	switch s.Problem {
	case KindMaze:
		width, err := s.param("width")
		if err != nil {
			return nil, err
		}
		height, err := s.param("height")
		if err != nil {
			return nil, err
		}
		seed, err := s.param("seed")
		if err != nil {
			return nil, err
		}

		root, err := maze.Generate(width, height, int64(seed))
		if err != nil {
			return nil, err
		}

		return root, nil

	case KindSAT:
		vars, err := s.param("variables")
		if err != nil {
			return nil, err
		}
		clauses, err := s.param("clauses")
		if err != nil {
			return nil, err
		}
		maxLits, err := s.param("max_literals")
		if err != nil {
			return nil, err
		}
		seed, err := s.param("seed")
		if err != nil {
			return nil, err
		}

		root, err := sat.Generate(vars, clauses, maxLits, int64(seed))
		if err != nil {
			return nil, err
		}

		return root, nil

	case KindHanoi:
		pegs, err := s.param("pegs")
		if err != nil {
			return nil, err
		}
		discs, err := s.param("discs")
		if err != nil {
			return nil, err
		}

		root, err := hanoi.Generate(pegs, discs)
		if err != nil {
			return nil, err
		}

		return root, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, s.Problem)
	}
}

// param fetches a required parameter by name.
func (s Spec) param(name string) (int, error) {
	v, ok := s.Parameters[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q for problem %q", ErrMissingParameter, name, s.Problem)
	}

	return v, nil
}
