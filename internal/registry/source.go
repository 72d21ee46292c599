package registry

// Source yields the current registry
type Source interface {
	Teams() []ServiceDescriptor
}

// Validator is implemented by sources that can report why parsing failed
type Validator interface {
	Validate() error
}

// ConfigSource re-reads its raw JSON (or file, when set) on every call
type ConfigSource struct {
	Raw  string
	File string
}

// NewConfigSource creates a source over a raw JSON value and optional file
func NewConfigSource(raw, file string) *ConfigSource {
	return &ConfigSource{Raw: raw, File: file}
}

// Teams returns the parsed registry, empty on failure
func (s *ConfigSource) Teams() []ServiceDescriptor {
	if s.File != "" {
		return LoadFile(s.File)
	}
	return Load(s.Raw)
}

// Validate parses without the fallback and returns the error, if any
func (s *ConfigSource) Validate() error {
	var err error
	if s.File != "" {
		_, err = ReadFile(s.File)
	} else {
		_, err = Parse(s.Raw)
	}
	return err
}

// Static is a fixed registry, handy for tests and one-shot CLI runs
type Static []ServiceDescriptor

// Teams returns the fixed list
func (s Static) Teams() []ServiceDescriptor {
	return []ServiceDescriptor(s)
}
