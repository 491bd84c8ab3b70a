package sheet

import (
	"fmt"

	"github.com/haivivi/solfa/pkg/pitch"
	"github.com/haivivi/solfa/pkg/theory"
)

// Result answers one item. Error is set instead of Notes when the item could
// not be answered.
type Result struct {
	ID      string        `json:"id" yaml:"id" msgpack:"id"`
	Op      Op            `json:"op" yaml:"op" msgpack:"op"`
	Text    string        `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
	Notes   []theory.Note `json:"notes,omitempty" yaml:"notes,omitempty" msgpack:"notes,omitempty"`
	Pitches []PitchInfo   `json:"pitches,omitempty" yaml:"pitches,omitempty" msgpack:"pitches,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
}

// PitchInfo is a voiced note with its frequency in Hz.
type PitchInfo struct {
	Pitch string  `json:"pitch" yaml:"pitch" msgpack:"pitch"`
	Hz    float64 `json:"hz" yaml:"hz" msgpack:"hz"`
}

// Response holds one result per item, in request order.
type Response struct {
	Results []Result `json:"results" yaml:"results" msgpack:"results"`
	Failed  int      `json:"failed" yaml:"failed" msgpack:"failed"`
}

// Evaluate answers every item of a validated request.
func Evaluate(req *Request) *Response {
	resp := &Response{Results: make([]Result, 0, len(req.Items))}
	for _, item := range req.Items {
		r := Result{ID: item.ID, Op: item.Op}
		if err := answer(item, &r); err != nil {
			r.Error = err.Error()
			r.Text = ""
			r.Notes = nil
			r.Pitches = nil
			resp.Failed++
		}
		resp.Results = append(resp.Results, r)
	}
	return resp
}

func answer(item Item, r *Result) error {
	switch item.Op {
	case OpChord:
		return answerChord(item, r)
	case OpScale:
		return answerScale(item, r)
	case OpTranspose:
		return answerTranspose(item, r)
	case OpInterval:
		return answerInterval(item, r)
	}
	return fmt.Errorf("unknown op %q", item.Op)
}

func answerChord(item Item, r *Result) error {
	root, err := theory.Parse(item.Root)
	if err != nil {
		return err
	}
	quality, err := theory.ParseChordQuality(item.Quality)
	if err != nil {
		return err
	}
	chord := theory.NewChord(root, quality)
	notes, err := chord.Triad()
	if err != nil {
		return err
	}
	r.Text = chord.Name()
	r.Notes = notes
	if item.Octave != nil {
		voiced, err := pitch.VoiceChord(chord, *item.Octave)
		if err != nil {
			return err
		}
		r.Pitches = pitchInfos(voiced)
	}
	return nil
}

func answerScale(item Item, r *Result) error {
	root, err := theory.Parse(item.Root)
	if err != nil {
		return err
	}
	kind, err := theory.ParseScaleKind(item.Kind)
	if err != nil {
		return err
	}
	direction := theory.Ascending
	if item.Direction != "" {
		if direction, err = theory.ParseScaleDirection(item.Direction); err != nil {
			return err
		}
	}
	scale, err := theory.BuildScale(root, kind, direction)
	if err != nil {
		return err
	}
	r.Text = scale.Print()
	r.Notes = scale.Notes()
	if item.Octave != nil {
		r.Pitches = pitchInfos(pitch.VoiceScale(scale, *item.Octave))
	}
	return nil
}

func answerTranspose(item Item, r *Result) error {
	root, err := theory.Parse(item.Root)
	if err != nil {
		return err
	}
	interval, err := theory.ParseInterval(item.Interval)
	if err != nil {
		return err
	}
	out, err := root.TryTranspose(interval, !item.Down)
	if err != nil {
		return err
	}
	r.Text = out.String()
	r.Notes = []theory.Note{out}
	if item.Octave != nil {
		from := pitch.New(root, *item.Octave)
		move := pitch.Up
		if item.Down {
			move = pitch.Down
		}
		to, err := move(from, interval)
		if err != nil {
			return err
		}
		r.Pitches = pitchInfos([]pitch.Pitch{from, to})
	}
	return nil
}

func answerInterval(item Item, r *Result) error {
	interval, err := theory.ParseInterval(item.Interval)
	if err != nil {
		return err
	}
	r.Text = fmt.Sprintf("%s %s: %d semitones, %d steps, inverts to %s",
		interval.Symbol(), interval.Name(), interval.Semitones(), interval.Steps(), interval.Invert().Symbol())
	if item.Root != "" {
		root, err := theory.Parse(item.Root)
		if err != nil {
			return err
		}
		up, err := root.TryTranspose(interval, true)
		if err != nil {
			return err
		}
		r.Notes = []theory.Note{root, up}
	}
	return nil
}

func pitchInfos(ps []pitch.Pitch) []PitchInfo {
	out := make([]PitchInfo, len(ps))
	for i, p := range ps {
		out[i] = PitchInfo{Pitch: p.String(), Hz: p.Frequency()}
	}
	return out
}
