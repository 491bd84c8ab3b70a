// Package config resolves solfa's settings from its profile file.
//
// The file lives under os.UserConfigDir()/solfa/config.yaml, or under
// $SOLFA_CONFIG_DIR when that is set:
//
//	current_profile: live
//	profiles:
//	  live:
//	    format: table
//	    direction: up_down
//	    osc_listen: 127.0.0.1:8765
//	    osc_reply: 127.0.0.1:8766
//	    theme: "#ffaa00"
//	    a4: "432"
//
// Settings missing from the profile fall back to the defaults below.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/haivivi/solfa/pkg/cli"
	"github.com/haivivi/solfa/pkg/pitch"
	"github.com/haivivi/solfa/pkg/theory"
)

// AppName names the config directory and the override variable.
const AppName = "solfa"

// Defaults used when neither flags nor the profile say otherwise.
const (
	DefaultFormat    = "raw"
	DefaultOSCListen = "127.0.0.1:8765"
	DefaultOSCReply  = "127.0.0.1:8766"
)

// Load loads the profile file from its default location.
func Load() (*cli.Config, error) {
	return cli.LoadConfig(AppName)
}

// Settings are the effective defaults of one invocation.
type Settings struct {
	Profile   string
	Format    cli.OutputFormat
	Direction theory.ScaleDirection
	OSCListen string
	OSCReply  string
	Theme     cli.Theme
	A4        float64
}

// Resolve reads the named profile (the current one when name is empty) and
// fills in defaults. A nil cfg yields the defaults alone.
func Resolve(cfg *cli.Config, name string) (*Settings, error) {
	p := &cli.Profile{}
	if cfg != nil {
		var err error
		if p, err = cfg.ResolveProfile(name); err != nil {
			return nil, err
		}
	}

	s := &Settings{
		Profile:   p.Name,
		Direction: theory.Ascending,
		OSCListen: or(p.OSCListen, DefaultOSCListen),
		OSCReply:  or(p.OSCReply, DefaultOSCReply),
		Theme:     cli.ThemeFromColor(p.Theme),
		A4:        pitch.A4,
	}

	format, err := cli.ParseOutputFormat(or(p.Format, DefaultFormat))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	s.Format = format

	if p.Direction != "" {
		if s.Direction, err = theory.ParseScaleDirection(p.Direction); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	if p.A4 != "" {
		if s.A4, err = parseA4(p.A4); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return s, nil
}

func parseA4(value string) (float64, error) {
	hz, err := strconv.ParseFloat(value, 64)
	if err != nil || hz <= 0 {
		return 0, fmt.Errorf("a4 must be a positive frequency in Hz, got %q", value)
	}
	return hz, nil
}

// Validate checks a value before "config set" stores it under key.
func Validate(key, value string) error {
	switch key {
	case "format":
		_, err := cli.ParseOutputFormat(value)
		return err
	case "direction":
		_, err := theory.ParseScaleDirection(value)
		return err
	case "a4":
		_, err := parseA4(value)
		return err
	case "osc_listen", "osc_reply":
		if _, _, err := net.SplitHostPort(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func or(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
