package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/hbnb/internal/paths"
	"github.com/mesh-intelligence/hbnb/internal/storage"
	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataFile string `yaml:"data_file,omitempty"`
	LogLevel string `yaml:"log_level"`
}

func newInitCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize hbnb configuration and storage",
		Long: "Create the configuration directory and a default config.yaml, then\n" +
			"create an empty data file if none exists.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, f)
		},
	}
}

func runInit(cmd *cobra.Command, f *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return exitError(exitSysError, fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Errorf("create config directory: %w", err))
	}

	configPath := paths.ConfigFile(configDir)
	if err := writeConfigIfMissing(configPath, f); err != nil {
		return exitError(exitSysError, fmt.Errorf("write config: %w", err))
	}

	s, err := loadSettings(f)
	if err != nil {
		return exitError(exitUserError, err)
	}
	if err := initStore(s.config); err != nil {
		return exitError(exitSysError, fmt.Errorf("initialize storage: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "hbnb initialized\nconfig: %s\ndata:   %s\n", configPath, s.config.DataFile)
	return nil
}

// writeConfigIfMissing creates config.yaml from the flags and defaults if
// the file does not exist. An existing file is left alone.
func writeConfigIfMissing(path string, f *rootFlags) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:  firstNonEmpty(f.backend, defaultBackend),
		DataFile: f.dataFile,
		LogLevel: firstNonEmpty(f.logLevel, defaultLogLevel),
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// initStore writes an empty registry when the data file does not exist yet.
func initStore(cfg types.Config) error {
	if _, err := os.Stat(cfg.DataFile); err == nil {
		return nil
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return storage.New(types.DefaultCatalog(), store).Save()
}
