// Package cli provides the shared pieces of the solfa command line.
//
// This package includes:
//   - Profile configuration stored as YAML
//   - Output formatting (YAML, JSON, raw, msgpack, framed table)
//   - jq filtering of results before they are printed
//   - Request file loading (YAML/JSON, with JSON repair)
//
// Configuration lives in <user config dir>/<app>/config.yaml and holds
// named profiles, one of which is current.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("solfa")
//	profile, err := cfg.ResolveProfile("")
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    Query:  ".results[].notes",
//	})
package cli
