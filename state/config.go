package state

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Protocol selects the routing algorithm.
type Protocol string

const (
	ProtocolDistanceVector = Protocol("distance-vector")
	ProtocolLinkState      = Protocol("link-state")
)

// ParseProtocol resolves a protocol name, accepting the short aliases
// "dv" and "ls".
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "distance-vector", "dv", "dvr":
		return ProtocolDistanceVector, nil
	case "link-state", "ls", "lsr":
		return ProtocolLinkState, nil
	}
	return "", fmt.Errorf("unknown protocol %q, expected distance-vector or link-state", s)
}

// Scenario bundles a whole simulation input in one YAML file, replacing
// the separate topology, message and change files.
type Scenario struct {
	Protocol Protocol  `yaml:"protocol,omitempty"`
	Links    []Link    `yaml:"links"`
	Messages []Message `yaml:"messages,omitempty"`
	Changes  []Change  `yaml:"changes,omitempty"`
}

func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, &sc)
	if err != nil {
		return nil, err
	}
	if sc.Protocol == "" {
		sc.Protocol = ProtocolDistanceVector
	}
	err = ScenarioValidator(&sc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) Save(path string) error {
	bytes, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0644)
}
