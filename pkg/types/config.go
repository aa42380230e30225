package types

import "errors"

// Config holds backend selection and the backing file for the registry.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataFile string `json:"data_file" yaml:"data_file"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default backing files per backend.
const (
	DefaultDataFile   = "file.json"
	DefaultSQLiteFile = "file.db"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty DataFile is valid; callers fall back
// to DefaultDataFile.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Path returns DataFile, or the backend's default file name when DataFile is
// empty.
func (c Config) Path() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultDataFile
}
