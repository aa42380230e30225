package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/hbnb/internal/paths"
	"github.com/mesh-intelligence/hbnb/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataFile = "data_file"
	cfgKeyLogLevel = "log_level"

	defaultBackend  = types.BackendJSON
	defaultLogLevel = "warn"
)

// settings is the resolved configuration of one run.
type settings struct {
	configDir string
	config    types.Config
	logLevel  slog.Level
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error. HBNB_BACKEND and HBNB_LOG_LEVEL override the
// file.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.BindEnv(cfgKeyBackend, "HBNB_BACKEND"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogLevel, "HBNB_LOG_LEVEL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadSettings resolves the settings of one run. The data file follows
// flag > config.yaml > HBNB_DATA_FILE > default; backend and log level follow
// flag > environment > config.yaml > default, as Viper orders them.
func loadSettings(f *rootFlags) (settings, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	cfg := types.Config{Backend: firstNonEmpty(f.backend, v.GetString(cfgKeyBackend))}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	cfg.DataFile, err = paths.ResolveDataFile(f.dataFile, v.GetString(cfgKeyDataFile), cfg.Path())
	if err != nil {
		return settings{}, fmt.Errorf("resolve data file: %w", err)
	}

	level, err := parseLevel(firstNonEmpty(f.logLevel, v.GetString(cfgKeyLogLevel)))
	if err != nil {
		return settings{}, err
	}
	return settings{configDir: configDir, config: cfg, logLevel: level}, nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
