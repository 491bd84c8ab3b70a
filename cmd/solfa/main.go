// Package main is the entry point for the solfa CLI.
//
// Usage:
//
//	solfa [flags] <command> [args]
//
// Commands:
//
//	note       - Parse a note and describe it
//	chord      - Name a triad or list its notes
//	transpose  - Move a note by an interval
//	interval   - List intervals or describe one
//	scale      - Spell a scale or mode
//	voice      - Place a scale or chord in octaves, with frequencies
//	sheet      - Answer a worksheet of questions from YAML or JSON
//	osc        - Answer questions over OSC
//	config     - Manage profiles
//	version    - Show version information
package main

import (
	"os"

	"github.com/haivivi/solfa/cmd/solfa/commands"
	"github.com/haivivi/solfa/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
