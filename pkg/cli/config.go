package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// Config is the configuration file of a CLI app.
type Config struct {
	// AppName is the application name
	AppName string `yaml:"-"`

	// CurrentProfile is the name of the active profile
	CurrentProfile string `yaml:"current_profile,omitempty"`

	// Profiles maps profile name to its settings
	Profiles map[string]*Profile `yaml:"profiles,omitempty"`

	configPath string
}

// Profile is a named set of defaults.
type Profile struct {
	Name string `json:"name" yaml:"name"`

	// Format is the default output format
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Direction is the default scale direction
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`

	// OSCListen is the UDP address the OSC server listens on
	OSCListen string `json:"osc_listen,omitempty" yaml:"osc_listen,omitempty"`

	// OSCReply is the UDP address OSC replies are sent to
	OSCReply string `json:"osc_reply,omitempty" yaml:"osc_reply,omitempty"`

	// Theme is the accent colour of table output, e.g. "#00ff9f"
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// A4 is the tuning reference in Hz, e.g. "432"
	A4 string `json:"a4,omitempty" yaml:"a4,omitempty"`
}

// ProfileKeys lists the keys accepted by Profile.Set.
var ProfileKeys = []string{"format", "direction", "osc_listen", "osc_reply", "theme", "a4"}

// LoadConfig loads the configuration of appName from its default location.
func LoadConfig(appName string) (*Config, error) {
	paths, err := NewPaths(appName)
	if err != nil {
		return nil, err
	}
	return LoadConfigWithPath(appName, paths.ConfigFile())
}

// LoadConfigWithPath loads configuration from configPath. A missing file
// yields an empty configuration; nothing is written until Save.
func LoadConfigWithPath(appName, configPath string) (*Config, error) {
	cfg := &Config{
		AppName:    appName,
		Profiles:   make(map[string]*Profile),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	for name, p := range cfg.Profiles {
		if p == nil {
			cfg.Profiles[name] = &Profile{Name: name}
			continue
		}
		p.Name = name
	}

	cfg.AppName = appName
	cfg.configPath = configPath
	return cfg, nil
}

// Save writes the configuration, creating its directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// AddProfile adds or replaces a profile and saves.
func (c *Config) AddProfile(name string, p *Profile) error {
	if name == "" {
		return errors.New("profile name is required")
	}
	p.Name = name
	c.Profiles[name] = p
	return c.Save()
}

// DeleteProfile removes a profile and saves. Deleting the current profile
// leaves no profile current.
func (c *Config) DeleteProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return c.Save()
}

// UseProfile makes name the current profile and saves.
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns a profile by name.
func (c *Config) GetProfile(name string) (*Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// ResolveProfile returns the named profile, or the current one when name is
// empty. With no name and no current profile it returns an empty profile,
// so callers can read defaults unconditionally.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	if name == "" {
		if c.CurrentProfile == "" {
			return &Profile{}, nil
		}
		name = c.CurrentProfile
	}
	return c.GetProfile(name)
}

// ListProfiles returns all profile names, sorted.
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Set assigns one setting. key is one of ProfileKeys.
func (p *Profile) Set(key, value string) error {
	switch key {
	case "format":
		p.Format = value
	case "direction":
		p.Direction = value
	case "osc_listen":
		p.OSCListen = value
	case "osc_reply":
		p.OSCReply = value
	case "theme":
		p.Theme = value
	case "a4":
		p.A4 = value
	default:
		return fmt.Errorf("unknown key %q (want one of %s)", key, strings.Join(ProfileKeys, ", "))
	}
	return nil
}
