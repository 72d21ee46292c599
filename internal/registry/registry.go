// Package registry loads the list of team services to monitor.
//
// The registry is external configuration and is parsed again on every use;
// a parse failure yields an empty registry rather than an error.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"teamboard/internal/errors"
	"teamboard/internal/logger"

	"gopkg.in/yaml.v3"
)

// ServiceDescriptor describes one monitored team service
type ServiceDescriptor struct {
	Name    string  `json:"name" yaml:"name"`
	Port    int     `json:"port" yaml:"port"`
	Repo    *string `json:"repo,omitempty" yaml:"repo,omitempty"`
	Tag     string  `json:"tag,omitempty" yaml:"tag,omitempty"`
	Course  string  `json:"course,omitempty" yaml:"course,omitempty"`
	Materia string  `json:"materia,omitempty" yaml:"materia,omitempty"`
}

// ResolvedTag returns the first non-blank of tag, course and materia,
// falling back to a tag inferred from the name.
func (d ServiceDescriptor) ResolvedTag() string {
	for _, v := range []string{d.Tag, d.Course, d.Materia} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return InferTag(d.Name)
}

// InferTag derives a subject tag from the team naming convention
func InferTag(name string) string {
	if name == "" {
		return "-"
	}
	n := strings.ToLower(name)
	switch {
	case strings.HasPrefix(n, "equipo"):
		return "PLN"
	case strings.HasPrefix(n, "itm"):
		return "ITM"
	default:
		return "General"
	}
}

// Parse decodes a JSON array of descriptors. An empty string is an empty
// registry; anything that is not a JSON array is an error. Entries that do
// not decode are skipped.
func Parse(raw string) ([]ServiceDescriptor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []ServiceDescriptor{}, nil
	}

	var probe interface{}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, errors.RegistryInvalid(err)
	}
	if _, ok := probe.([]interface{}); !ok {
		return nil, errors.RegistryInvalid(fmt.Errorf("TEAMS_JSON must be a list, got %T", probe))
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, errors.RegistryInvalid(err)
	}

	out := make([]ServiceDescriptor, 0, len(entries))
	for i, entry := range entries {
		var e wireDescriptor
		if err := json.Unmarshal(entry, &e); err != nil {
			skipEntry(i, err)
			continue
		}
		out = append(out, e.descriptor())
	}
	return out, nil
}

// ParseYAML decodes a YAML sequence of descriptors
func ParseYAML(data []byte) ([]ServiceDescriptor, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.RegistryInvalid(err)
	}
	if len(node.Content) == 0 {
		return []ServiceDescriptor{}, nil
	}
	seq := node.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, errors.RegistryInvalid(fmt.Errorf("teams file must be a list"))
	}

	out := make([]ServiceDescriptor, 0, len(seq.Content))
	for i, item := range seq.Content {
		var e wireDescriptor
		if err := item.Decode(&e); err != nil {
			skipEntry(i, err)
			continue
		}
		out = append(out, e.descriptor())
	}
	return out, nil
}

func skipEntry(index int, err error) {
	logger.WithFields(logger.Fields{"index": index, "error": err.Error()}).Warn("skipping invalid registry entry")
}

// Load parses raw and falls back to an empty registry on failure
func Load(raw string) []ServiceDescriptor {
	teams, err := Parse(raw)
	if err != nil {
		logger.WithError(err).Warn("TEAMS_JSON invalid, using empty registry")
		return []ServiceDescriptor{}
	}
	return teams
}

// ReadFile reads a JSON or YAML registry file
func ReadFile(path string) ([]ServiceDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.RegistryInvalid(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(string(data))
	}
}

// LoadFile reads path and falls back to an empty registry on failure
func LoadFile(path string) []ServiceDescriptor {
	teams, err := ReadFile(path)
	if err != nil {
		logger.WithFields(logger.Fields{"path": path, "error": err.Error()}).Warn("teams file invalid, using empty registry")
		return []ServiceDescriptor{}
	}
	return teams
}

// Names returns the non-empty names in registry order
func Names(teams []ServiceDescriptor) []string {
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}
