package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// wireDescriptor is the on-disk shape of an entry; port is looser than
// ServiceDescriptor allows.
type wireDescriptor struct {
	Name    string   `json:"name" yaml:"name"`
	Port    flexPort `json:"port" yaml:"port"`
	Repo    *string  `json:"repo,omitempty" yaml:"repo,omitempty"`
	Tag     string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Course  string   `json:"course,omitempty" yaml:"course,omitempty"`
	Materia string   `json:"materia,omitempty" yaml:"materia,omitempty"`
}

func (w wireDescriptor) descriptor() ServiceDescriptor {
	return ServiceDescriptor{
		Name:    w.Name,
		Port:    int(w.Port),
		Repo:    w.Repo,
		Tag:     w.Tag,
		Course:  w.Course,
		Materia: w.Materia,
	}
}

// flexPort accepts an integer, a float (truncated) or a decimal string.
// A missing or null port is 0.
type flexPort int

func (p *flexPort) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		return p.setString(str)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("port: %w", err)
	}
	return p.setFloat(f)
}

func (p *flexPort) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("port: expected a scalar at line %d", value.Line)
	}
	switch value.Tag {
	case "!!null":
		*p = 0
		return nil
	case "!!int", "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("port: %w", err)
		}
		return p.setFloat(f)
	default:
		return p.setString(value.Value)
	}
}

func (p *flexPort) setString(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port: %q is not an integer", s)
	}
	*p = flexPort(n)
	return nil
}

func (p *flexPort) setFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("port: %v out of range", f)
	}
	*p = flexPort(int(f))
	return nil
}
