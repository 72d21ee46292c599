package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"teamboard/internal/errors"
	"teamboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "empty string", raw: "", want: 0},
		{name: "empty list", raw: "[]", want: 0},
		{name: "two services", raw: `[{"name":"svc1","port":9001},{"name":"svc2","port":9002,"repo":"https://git.example/svc2"}]`, want: 2},
		{name: "object is not a list", raw: `{"name":"svc1"}`, wantErr: true},
		{name: "scalar", raw: `42`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "malformed", raw: `[{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrRegistryInvalid))
				return
			}
			require.NoError(t, err)
			assert.Len(t, teams, tt.want)
		})
	}
}

func TestParseSkipsInvalidEntries(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	teams, err := Parse(`[{"name":"svc1","port":9001},{"name":"svc2","port":"not-a-port"},"junk",{"name":"svc3","port":[1]}]`)

	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "svc1", teams[0].Name)
	assert.Equal(t, 9001, teams[0].Port)
	assert.Contains(t, buf.String(), "skipping invalid registry entry")
}

func TestParseLoosePorts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"integer", `[{"name":"svc1","port":9001}]`, 9001},
		{"float", `[{"name":"svc1","port":9001.0}]`, 9001},
		{"numeric string", `[{"name":"svc1","port":"9002"}]`, 9002},
		{"padded string", `[{"name":"svc1","port":" 9003 "}]`, 9003},
		{"null", `[{"name":"svc1","port":null}]`, 0},
		{"missing", `[{"name":"svc1"}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := Load(tt.raw)
			require.Len(t, teams, 1)
			assert.Equal(t, tt.want, teams[0].Port)
		})
	}
}

func TestParseYAMLSkipsInvalidEntries(t *testing.T) {
	data := []byte("- name: svc1\n  port: \"9001\"\n- name: svc2\n  port: [1, 2]\n- name: svc3\n  port: 9003.0\n- plain string\n")

	teams, err := ParseYAML(data)

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, 9001, teams[0].Port)
	assert.Equal(t, "svc3", teams[1].Name)
	assert.Equal(t, 9003, teams[1].Port)
}

func TestLoadFallsBackToEmptyAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	teams := Load(`{"name":"svc1","port":9001}`)

	assert.NotNil(t, teams)
	assert.Empty(t, teams)
	assert.Contains(t, buf.String(), "TEAMS_JSON invalid")
}

func TestResolvedTag(t *testing.T) {
	tests := []struct {
		name string
		d    ServiceDescriptor
		want string
	}{
		{"explicit tag", ServiceDescriptor{Name: "equipo1", Tag: " BD "}, "BD"},
		{"course fallback", ServiceDescriptor{Name: "equipo1", Course: "SO"}, "SO"},
		{"materia fallback", ServiceDescriptor{Name: "x", Materia: "Redes"}, "Redes"},
		{"inferred PLN", ServiceDescriptor{Name: "Equipo7"}, "PLN"},
		{"inferred ITM", ServiceDescriptor{Name: "itm-alpha"}, "ITM"},
		{"inferred General", ServiceDescriptor{Name: "svc1"}, "General"},
		{"no name", ServiceDescriptor{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.ResolvedTag())
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "teams.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- name: svc1\n  port: 9001\n- name: svc2\n  tag: BD\n"), 0644))

	teams, err := ReadFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "svc1", teams[0].Name)
	assert.Equal(t, 9001, teams[0].Port)
	assert.Equal(t, "BD", teams[1].Tag)

	jsonPath := filepath.Join(dir, "teams.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"svc3"}]`), 0644))
	teams, err = ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc3"}, Names(teams))

	badPath := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badPath, []byte("name: svc1\n"), 0644))
	_, err = ReadFile(badPath)
	assert.Error(t, err)
	assert.Empty(t, LoadFile(badPath))
	assert.Empty(t, LoadFile(filepath.Join(dir, "missing.json")))
}

func TestConfigSourceReparsesEveryCall(t *testing.T) {
	src := NewConfigSource(`[{"name":"svc1"}]`, "")
	assert.Equal(t, []string{"svc1"}, Names(src.Teams()))
	assert.NoError(t, src.Validate())

	src.Raw = `not json`
	assert.Empty(t, src.Teams())
	assert.Error(t, src.Validate())
}

func TestNamesSkipsEmpty(t *testing.T) {
	teams := []ServiceDescriptor{{Name: "a"}, {Port: 1}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, Names(teams))
}
