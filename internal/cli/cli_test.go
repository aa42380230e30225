package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/hbnb/internal/paths"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// clearEnv keeps the caller's environment out of location resolution.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataFile, "")
	t.Setenv("HBNB_BACKEND", "")
	t.Setenv("HBNB_LOG_LEVEL", "")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hbnb v"+Version+"\nmodule: github.com/mesh-intelligence/hbnb\n", out)
}

func TestConsoleRoundTrip(t *testing.T) {
	clearEnv(t)
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			args := []string{
				"--config-dir", filepath.Join(dir, "config"),
				"--data-file", filepath.Join(dir, "objects"),
				"--backend", backend,
			}

			out, err := execute(t, "create User\n", args...)
			require.NoError(t, err)
			id := strings.TrimSpace(out)
			require.NotEmpty(t, id)

			out, err = execute(t, "update User "+id+" first_name Betty\n", args...)
			require.NoError(t, err)
			assert.Equal(t, "\n", out)

			out, err = execute(t, "show User "+id+"\ncount User\n", args...)
			require.NoError(t, err)
			assert.Contains(t, out, "[User] ("+id+")")
			assert.Contains(t, out, "'first_name': 'Betty'")
			assert.True(t, strings.HasSuffix(out, "1\n\n"), out)
		})
	}
}

func TestConsoleReadsConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "from-config.db")
	cfg, err := yaml.Marshal(configFile{Backend: "sqlite", DataFile: dataFile, LogLevel: "error"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), cfg, 0o644))

	_, err = execute(t, "create State\n", "--config-dir", dir)
	require.NoError(t, err)
	_, err = os.Stat(dataFile)
	assert.NoError(t, err, "data_file from config.yaml is used")
}

func TestConsoleErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name     string
		data     string
		args     []string
		wantCode int
	}{
		{name: "unknown backend", args: []string{"--backend", "csv"}, wantCode: exitUserError},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantCode: exitUserError},
		{name: "unexpected argument", args: []string{"extra"}, wantCode: exitUserError},
		{name: "malformed data file", data: "not json", wantCode: exitSysError},
		{name: "unknown type in data file", data: `{"Foo.1":{"id":"1","__class__":"Foo"}}`, wantCode: exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			dataFile := filepath.Join(dir, "file.json")
			if tt.data != "" {
				require.NoError(t, os.WriteFile(dataFile, []byte(tt.data), 0o644))
			}
			args := append([]string{"--config-dir", dir, "--data-file", dataFile}, tt.args...)
			_, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, exitCode(err))
		})
	}
}

func TestInit(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	dataFile := filepath.Join(dir, "data", "file.json")

	out, err := execute(t, "", "init", "--config-dir", configDir, "--data-file", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, "hbnb initialized")

	raw, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	assert.Equal(t, configFile{Backend: "json", DataFile: dataFile, LogLevel: "warn"}, cfg)

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dataFile, []byte(`{}`), 0o644))
		_, err := execute(t, "", "init", "--config-dir", configDir, "--backend", "sqlite")
		require.NoError(t, err)

		again, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, raw, again, "existing config.yaml is kept")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "WARN"},
		{in: "debug", want: "DEBUG"},
		{in: "INFO", want: "INFO"},
		{in: "error", want: "ERROR"},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitSysError, exitCode(exitError(exitSysError, os.ErrNotExist)))
	assert.ErrorIs(t, exitError(exitSysError, os.ErrNotExist), os.ErrNotExist)
}
