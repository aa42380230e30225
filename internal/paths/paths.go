// Package paths resolves the configuration directory and the backing data
// file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileName is the config file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "HBNB_CONFIG_DIR"
	EnvDataFile  = "HBNB_DATA_FILE"
)

const appName = "hbnb"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/hbnb (fallback ~/.config/hbnb)
// macOS:   ~/Library/Application Support/hbnb
// Windows: %APPDATA%/hbnb
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > HBNB_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the backing data file following the precedence
// chain: flag > configYAMLValue > HBNB_DATA_FILE env > defaultName in the
// working directory.
//
// The console has always kept its file next to where it is started, so the
// CWD default stays the primary mode.
func ResolveDataFile(flag, configYAMLValue, defaultName string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, defaultName), nil
}

// ConfigFile returns the config file path inside dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
