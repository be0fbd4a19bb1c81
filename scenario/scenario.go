package scenario

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/routelab/routesim/state"
)

// Scenario is the single-document YAML form of a run: the initial links, the
// messages to trace, the change sequence, and optionally which solver to use.
type Scenario struct {
	Algorithm string          `yaml:"algorithm,omitempty"`
	Links     []state.Link    `yaml:"links"`
	Messages  []state.Message `yaml:"messages,omitempty"`
	Changes   []state.Change  `yaml:"changes,omitempty"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(file, &sc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(&sc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks a scenario for records no solver can give meaning to.
func Validate(sc *Scenario) error {
	switch sc.Algorithm {
	case "", "dv", "distance-vector", "lsr", "link-state":
	default:
		return fmt.Errorf("unknown algorithm %q", sc.Algorithm)
	}
	for i, l := range sc.Links {
		if err := validateLink(l, false); err != nil {
			return fmt.Errorf("links[%d]: %w", i, err)
		}
	}
	for i, c := range sc.Changes {
		if err := validateLink(c, true); err != nil {
			return fmt.Errorf("changes[%d]: %w", i, err)
		}
	}
	for i, m := range sc.Messages {
		if m.From < 0 || m.To < 0 {
			return fmt.Errorf("messages[%d]: negative node id", i)
		}
	}
	return nil
}

func validateLink(l state.Link, change bool) error {
	if l.A < 0 || l.B < 0 {
		return fmt.Errorf("negative node id")
	}
	if l.A == l.B {
		return fmt.Errorf("link from node %d to itself", l.A)
	}
	if l.Cost == state.LinkDown {
		if !change {
			return fmt.Errorf("cost %d is reserved for change records", state.LinkDown)
		}
		return nil
	}
	if l.Cost <= 0 || l.Cost >= state.INF {
		return fmt.Errorf("cost %d outside (0, %d)", l.Cost, state.INF)
	}
	return nil
}
