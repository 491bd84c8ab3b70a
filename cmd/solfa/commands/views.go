package commands

import (
	"fmt"
	"strings"

	"github.com/haivivi/solfa/pkg/cli"
	"github.com/haivivi/solfa/pkg/pitch"
	"github.com/haivivi/solfa/pkg/sheet"
	"github.com/haivivi/solfa/pkg/theory"
)

// The view types below are what commands print. Each one renders as plain
// text for -o raw and as a frame for -o table; the other formats use the
// struct tags.

func joinNotes(notes []theory.Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

type noteView struct {
	Spelling    theory.Note   `json:"spelling" yaml:"spelling" msgpack:"spelling"`
	Letter      string        `json:"letter" yaml:"letter" msgpack:"letter"`
	Accidental  string        `json:"accidental" yaml:"accidental" msgpack:"accidental"`
	Accidentals int           `json:"accidentals" yaml:"accidentals" msgpack:"accidentals"`
	PitchClass  int           `json:"pitch_class" yaml:"pitch_class" msgpack:"pitch_class"`
	Enharmonics []theory.Note `json:"enharmonics" yaml:"enharmonics" msgpack:"enharmonics"`
}

func newNoteView(n theory.Note) noteView {
	return noteView{
		Spelling:    n,
		Letter:      n.Name().String(),
		Accidental:  n.Variant().String(),
		Accidentals: n.Accidentals(),
		PitchClass:  n.PitchClass(),
		Enharmonics: n.Enharmonics(),
	}
}

func (v noteView) String() string {
	return fmt.Sprintf("%s: letter %s, %s, pitch class %d, enharmonic with %s",
		v.Spelling, v.Letter, v.Accidental, v.PitchClass, joinNotes(v.Enharmonics))
}

func (v noteView) Table() cli.Table {
	return cli.Table{
		Title:  v.Spelling.String(),
		Status: fmt.Sprintf("pitch class %d", v.PitchClass),
		Sections: []cli.Section{
			cli.NewSection("spelling", "letter "+v.Letter, "accidental "+v.Accidental),
			cli.NewSection("enharmonics", joinNotes(v.Enharmonics)),
		},
	}
}

type chordView struct {
	Name    string              `json:"name" yaml:"name" msgpack:"name"`
	Root    theory.Note         `json:"root" yaml:"root" msgpack:"root"`
	Quality theory.ChordQuality `json:"quality" yaml:"quality" msgpack:"quality"`
	Notes   []theory.Note       `json:"notes" yaml:"notes" msgpack:"notes"`

	showNotes bool
}

func (v chordView) String() string {
	if v.showNotes {
		return joinNotes(v.Notes)
	}
	return v.Name
}

func (v chordView) Table() cli.Table {
	return cli.Table{
		Title:    v.Name,
		Status:   v.Quality.String(),
		Sections: []cli.Section{cli.NewSection("notes", joinNotes(v.Notes))},
	}
}

type transposeView struct {
	From      theory.Note     `json:"from" yaml:"from" msgpack:"from"`
	Interval  theory.Interval `json:"interval" yaml:"interval" msgpack:"interval"`
	Direction string          `json:"direction" yaml:"direction" msgpack:"direction"`
	To        theory.Note     `json:"to" yaml:"to" msgpack:"to"`
}

func (v transposeView) String() string {
	return v.To.String()
}

func (v transposeView) Table() cli.Table {
	return cli.Table{
		Title:  v.To.String(),
		Status: v.Direction,
		Sections: []cli.Section{
			cli.NewSection("move", fmt.Sprintf("%s %s %s (%s) = %s",
				v.From, v.Direction, v.Interval.Symbol(), v.Interval.Name(), v.To)),
		},
	}
}

type intervalView struct {
	Symbol    string `json:"symbol" yaml:"symbol" msgpack:"symbol"`
	Name      string `json:"name" yaml:"name" msgpack:"name"`
	Semitones int    `json:"semitones" yaml:"semitones" msgpack:"semitones"`
	Steps     int    `json:"steps" yaml:"steps" msgpack:"steps"`
	Inverse   string `json:"inverse" yaml:"inverse" msgpack:"inverse"`
}

func newIntervalView(i theory.Interval) intervalView {
	return intervalView{
		Symbol:    i.Symbol(),
		Name:      i.Name(),
		Semitones: i.Semitones(),
		Steps:     i.Steps(),
		Inverse:   i.Invert().Symbol(),
	}
}

func (v intervalView) String() string {
	return fmt.Sprintf("%-3s %-19s %-12s %d steps, inverts to %s",
		v.Symbol, v.Name, cli.FormatSemitones(v.Semitones), v.Steps, v.Inverse)
}

func (v intervalView) Table() cli.Table {
	return intervalList{v}.Table()
}

type intervalList []intervalView

func (l intervalList) String() string {
	lines := make([]string, len(l))
	for i, v := range l {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

func (l intervalList) Table() cli.Table {
	lines := make([]string, len(l))
	for i, v := range l {
		lines[i] = v.String()
	}
	return cli.Table{
		Title:    "intervals",
		Status:   fmt.Sprintf("%d", len(l)),
		Sections: []cli.Section{cli.NewSection("symbol name semitones steps inverse", lines...)},
	}
}

type scaleView struct {
	Root      theory.Note           `json:"root" yaml:"root" msgpack:"root"`
	Kind      theory.ScaleKind      `json:"kind" yaml:"kind" msgpack:"kind"`
	Direction theory.ScaleDirection `json:"direction" yaml:"direction" msgpack:"direction"`
	Notes     []theory.Note         `json:"notes" yaml:"notes" msgpack:"notes"`
}

func newScaleView(s *theory.Scale) scaleView {
	return scaleView{Root: s.Root(), Kind: s.Kind(), Direction: s.Direction(), Notes: s.Notes()}
}

func (v scaleView) String() string {
	return joinNotes(v.Notes)
}

func (v scaleView) Table() cli.Table {
	pattern := v.Kind.Pattern()
	steps := make([]string, len(pattern))
	for i, iv := range pattern {
		steps[i] = iv.Symbol()
	}
	return cli.Table{
		Title:  v.Root.String() + " " + v.Kind.String(),
		Status: v.Direction.String(),
		Sections: []cli.Section{
			cli.NewSection("notes", joinNotes(v.Notes)),
			cli.NewSection("pattern", strings.Join(steps, " ")),
		},
	}
}

type voicedPitch struct {
	Pitch string  `json:"pitch" yaml:"pitch" msgpack:"pitch"`
	Key   int     `json:"key" yaml:"key" msgpack:"key"`
	Hz    float64 `json:"hz" yaml:"hz" msgpack:"hz"`
}

type voiceView struct {
	Title   string        `json:"title" yaml:"title" msgpack:"title"`
	A4      float64       `json:"a4" yaml:"a4" msgpack:"a4"`
	Pitches []voicedPitch `json:"pitches" yaml:"pitches" msgpack:"pitches"`
}

func newVoiceView(title string, a4 float64, ps []pitch.Pitch) voiceView {
	v := voiceView{Title: title, A4: a4, Pitches: make([]voicedPitch, len(ps))}
	for i, p := range ps {
		v.Pitches[i] = voicedPitch{Pitch: p.String(), Key: p.Key(), Hz: p.FrequencyAt(a4)}
	}
	return v
}

func (v voiceView) lines() []string {
	lines := make([]string, len(v.Pitches))
	for i, p := range v.Pitches {
		lines[i] = fmt.Sprintf("%-5s %3d  %s", p.Pitch, p.Key, cli.FormatHz(p.Hz))
	}
	return lines
}

func (v voiceView) String() string {
	return strings.Join(v.lines(), "\n")
}

func (v voiceView) Table() cli.Table {
	return cli.Table{
		Title:    v.Title,
		Status:   "A4 = " + cli.FormatHz(v.A4),
		Sections: []cli.Section{cli.NewSection("pitch key frequency", v.lines()...)},
	}
}

// sheetView is a worksheet response with text and table forms.
type sheetView sheet.Response

func (v *sheetView) String() string {
	lines := make([]string, len(v.Results))
	for i, r := range v.Results {
		answer := r.Text
		if r.Error != "" {
			answer = "error: " + r.Error
		}
		lines[i] = fmt.Sprintf("%s\t%s\t%s", r.ID, r.Op, answer)
	}
	return strings.Join(lines, "\n")
}

func (v *sheetView) Table() cli.Table {
	sections := make([]cli.Section, len(v.Results))
	for i, r := range v.Results {
		var lines []string
		if r.Error != "" {
			lines = append(lines, "error: "+r.Error)
		} else {
			lines = append(lines, r.Text)
			for _, p := range r.Pitches {
				lines = append(lines, fmt.Sprintf("%-5s %s", p.Pitch, cli.FormatHz(p.Hz)))
			}
		}
		sections[i] = cli.NewSection(fmt.Sprintf("%s %s", r.Op, r.ID), lines...)
	}
	return cli.Table{
		Title:    "worksheet",
		Status:   fmt.Sprintf("%d items, %d failed", len(v.Results), v.Failed),
		Sections: sections,
	}
}
