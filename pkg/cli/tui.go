package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFrameWidth is the frame width used when none is given.
const DefaultFrameWidth = 72

// Theme holds the two colours of framed output.
type Theme struct {
	Primary lipgloss.Color // borders, title and labels
	Dim     lipgloss.Color // status and help
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// ThemeFromColor returns DefaultTheme with its accent replaced. An empty
// color keeps the default.
func ThemeFromColor(color string) Theme {
	t := DefaultTheme
	if color != "" {
		t.Primary = lipgloss.Color(color)
	}
	return t
}

// Styles are the lipgloss styles a Frame draws with.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	accent := lipgloss.NewStyle().Foreground(t.Primary)
	return Styles{
		Title:  accent.Bold(true),
		Label:  accent.Bold(true).Padding(0, 1),
		Border: accent,
		Help:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Section is a labelled block of lines inside a frame.
type Section struct {
	Label string
	Lines []string
}

// NewSection returns a section holding lines.
func NewSection(label string, lines ...string) Section {
	return Section{Label: label, Lines: lines}
}

// Table is the framed form of a result.
type Table struct {
	Title    string
	Status   string
	Sections []Section
}

// Tabler is implemented by results that render as a table.
type Tabler interface {
	Table() Table
}

// Frame draws a rounded box: a title row, one ruled block per section and
// an optional help line under the box.
type Frame struct {
	Styles   Styles
	Title    string
	Status   string
	Sections []Section
	Help     string
}

// Render draws the frame width cells wide (DefaultFrameWidth if width <= 0).
// With height 0 every section shows all its lines. Otherwise the frame is
// exactly height lines and each section keeps its last lines.
func (f Frame) Render(width, height int) string {
	if width <= 0 {
		width = DefaultFrameWidth
	}
	inner := max(width-2, 2)
	b := f.Styles.Border
	side := b.Render("│")

	head := f.Styles.Title.Render(f.Title)
	if f.Status != "" {
		head += " " + f.Styles.Help.Render("["+f.Status+"]")
	}

	out := []string{
		b.Render("╭" + strings.Repeat("─", inner) + "╮"),
		side + " " + fit(head, inner-2) + " " + side,
	}
	rows := f.rows(height)
	for i, sec := range f.Sections {
		label := ansi.Truncate(f.Styles.Label.Render(sec.Label), inner-1, "")
		rule := strings.Repeat("─", max(0, inner-1-lipgloss.Width(label)))
		out = append(out, b.Render("├─")+label+b.Render(rule+"┤"))
		for _, line := range lastLines(sec.Lines, rows[i]) {
			out = append(out, side+" "+fit(line, inner-2)+" "+side)
		}
	}
	out = append(out, b.Render("╰"+strings.Repeat("─", inner)+"╯"))
	if f.Help != "" {
		out = append(out, f.Styles.Help.Render(f.Help))
	}
	return strings.Join(out, "\n")
}

// rows returns the number of content rows each section gets.
func (f Frame) rows(height int) []int {
	rows := make([]int, len(f.Sections))
	if height <= 0 {
		for i, sec := range f.Sections {
			rows[i] = len(sec.Lines)
		}
		return rows
	}
	if len(rows) == 0 {
		return rows
	}
	// border, title, border, one rule per section, help
	budget := height - 3 - len(rows)
	if f.Help != "" {
		budget--
	}
	per, extra := budget/len(rows), budget%len(rows)
	for i := range rows {
		rows[i] = per
		if i < extra {
			rows[i]++
		}
		rows[i] = max(rows[i], 1)
	}
	return rows
}

// lastLines returns the final n lines, padded with empty lines up to n.
func lastLines(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[len(lines)-n:]
	}
	return append(append([]string(nil), lines...), make([]string, n-len(lines))...)
}

// fit truncates or pads s to exactly w display cells.
func fit(s string, w int) string {
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}
