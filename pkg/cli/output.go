package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatYAML outputs as YAML (default for terminal)
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
	// FormatTable outputs a framed table
	FormatTable OutputFormat = "table"
	// FormatRaw outputs strings and bytes as they are
	FormatRaw OutputFormat = "raw"
	// FormatMsgpack outputs binary msgpack
	FormatMsgpack OutputFormat = "msgpack"
)

// OutputFormats lists every supported format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatYAML, FormatJSON, FormatTable, FormatRaw, FormatMsgpack}
}

// ParseOutputFormat validates a format name. The empty string is YAML.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatYAML, nil
	}
	for _, f := range OutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// OutputOptions configures output behavior
type OutputOptions struct {
	// Format is the output format (yaml, json, table, raw, msgpack)
	Format OutputFormat

	// File is the output file path (empty for stdout)
	File string

	// Indent is the indentation for JSON output
	Indent string

	// Writer is an optional custom writer (overrides File)
	Writer io.Writer

	// Query is a jq expression applied to the JSON form of the result
	Query string

	// Theme colours table output; the zero value means DefaultTheme
	Theme Theme

	// Width is the table width; 0 means DefaultFrameWidth
	Width int
}

// Output writes the result to the configured destination
func Output(result any, opts OutputOptions) error {
	if opts.Query != "" {
		filtered, err := Query(result, opts.Query)
		if err != nil {
			return err
		}
		result = filtered
	}

	var w io.Writer = os.Stdout

	if opts.Writer != nil {
		w = opts.Writer
	} else if opts.File != "" {
		f, err := os.Create(opts.File)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch opts.Format {
	case FormatJSON:
		return outputJSON(w, result, opts.Indent)
	case FormatYAML, "":
		return outputYAML(w, result)
	case FormatRaw:
		return outputRaw(w, result)
	case FormatMsgpack:
		return outputMsgpack(w, result)
	case FormatTable:
		return outputTable(w, result, opts)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func outputJSON(w io.Writer, result any, indent string) error {
	enc := json.NewEncoder(w)
	if indent == "" {
		indent = "  "
	}
	enc.SetIndent("", indent)
	return enc.Encode(result)
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputRaw(w io.Writer, result any) error {
	switch v := result.(type) {
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		_, err := io.WriteString(w, v+"\n")
		return err
	case fmt.Stringer:
		_, err := io.WriteString(w, v.String()+"\n")
		return err
	default:
		return outputYAML(w, result)
	}
}

func outputMsgpack(w io.Writer, result any) error {
	data, err := msgpack.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputTable(w io.Writer, result any, opts OutputOptions) error {
	var t Table
	if tb, ok := result.(Tabler); ok {
		t = tb.Table()
	} else {
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		t = Table{Title: "result", Sections: []Section{NewSection("", lines...)}}
	}

	theme := opts.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme
	}
	frame := Frame{
		Styles:   NewStyles(theme),
		Title:    t.Title,
		Status:   t.Status,
		Sections: t.Sections,
	}
	_, err := io.WriteString(w, frame.Render(opts.Width, 0)+"\n")
	return err
}

// Print helpers for terminal output

// PrintSuccess prints a success message with checkmark
func PrintSuccess(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...any) {
	fmt.Printf("ℹ "+format+"\n", args...)
}
