package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigFile is the configuration filename inside the app directory.
const DefaultConfigFile = "config.yaml"

// Paths locates an app's files.
type Paths struct {
	// AppName is the application name
	AppName string

	// Dir is the app directory holding the config file
	Dir string
}

// NewPaths returns the paths of appName under the user config directory.
// The environment variable named by EnvConfigDir, if set, replaces the app
// directory.
func NewPaths(appName string) (*Paths, error) {
	if dir := os.Getenv(EnvConfigDir(appName)); dir != "" {
		return &Paths{AppName: appName, Dir: dir}, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return &Paths{AppName: appName, Dir: filepath.Join(base, appName)}, nil
}

// EnvConfigDir returns the name of the override variable, e.g.
// SOLFA_CONFIG_DIR for "solfa".
func EnvConfigDir(appName string) string {
	return strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_CONFIG_DIR"
}

// AppDir returns the app-specific directory.
func (p *Paths) AppDir() string {
	return p.Dir
}

// ConfigFile returns the config file path.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.Dir, DefaultConfigFile)
}

// EnsureAppDir creates the app directory if it doesn't exist
func (p *Paths) EnsureAppDir() error {
	return os.MkdirAll(p.Dir, 0755)
}
