package oscquery

import (
	"errors"
	"fmt"

	"github.com/hypebeast/go-osc/osc"

	"github.com/haivivi/solfa/pkg/theory"
)

// OSC addresses.
const (
	AddrChord     = "/solfa/chord"
	AddrScale     = "/solfa/scale"
	AddrTranspose = "/solfa/transpose"
	AddrError     = "/solfa/error"

	replySuffix = "/reply"
)

// Addresses lists every request address in dispatch order.
func Addresses() []string {
	return []string{AddrChord, AddrScale, AddrTranspose}
}

// ErrBadArguments is reported when a request has the wrong argument count
// or types.
var ErrBadArguments = errors.New("oscquery: bad arguments")

// Handle answers one request message. It never returns nil: failures are
// answered with an AddrError message.
func Handle(msg *osc.Message) *osc.Message {
	notes, err := answer(msg)
	if err != nil {
		return osc.NewMessage(AddrError, msg.Address, err.Error())
	}
	reply := osc.NewMessage(msg.Address + replySuffix)
	for _, n := range notes {
		reply.Append(n.String())
	}
	return reply
}

func answer(msg *osc.Message) ([]theory.Note, error) {
	switch msg.Address {
	case AddrChord:
		return chord(msg.Arguments)
	case AddrScale:
		return scale(msg.Arguments)
	case AddrTranspose:
		return transpose(msg.Arguments)
	}
	return nil, fmt.Errorf("%w: unknown address %s", ErrBadArguments, msg.Address)
}

func chord(args []any) ([]theory.Note, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: chord wants 1 or 2 arguments, got %d", ErrBadArguments, len(args))
	}
	root, err := noteArg(args, 0)
	if err != nil {
		return nil, err
	}
	quality := theory.Major
	if len(args) == 2 {
		s, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}
		if quality, err = theory.ParseChordQuality(s); err != nil {
			return nil, err
		}
	}
	return theory.NewChord(root, quality).Triad()
}

func scale(args []any) ([]theory.Note, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: scale wants 2 or 3 arguments, got %d", ErrBadArguments, len(args))
	}
	root, err := noteArg(args, 0)
	if err != nil {
		return nil, err
	}
	s, err := stringArg(args, 1)
	if err != nil {
		return nil, err
	}
	kind, err := theory.ParseScaleKind(s)
	if err != nil {
		return nil, err
	}
	direction := theory.Ascending
	if len(args) == 3 {
		if s, err = stringArg(args, 2); err != nil {
			return nil, err
		}
		if direction, err = theory.ParseScaleDirection(s); err != nil {
			return nil, err
		}
	}
	sc, err := theory.BuildScale(root, kind, direction)
	if err != nil {
		return nil, err
	}
	return sc.Notes(), nil
}

func transpose(args []any) ([]theory.Note, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: transpose wants 2 or 3 arguments, got %d", ErrBadArguments, len(args))
	}
	n, err := noteArg(args, 0)
	if err != nil {
		return nil, err
	}
	s, err := stringArg(args, 1)
	if err != nil {
		return nil, err
	}
	interval, err := theory.ParseInterval(s)
	if err != nil {
		return nil, err
	}
	down := false
	if len(args) == 3 {
		if down, err = downArg(args[2]); err != nil {
			return nil, err
		}
	}
	out, err := n.TryTranspose(interval, !down)
	if err != nil {
		return nil, err
	}
	return []theory.Note{out}, nil
}

func stringArg(args []any, i int) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d is %T, want string", ErrBadArguments, i+1, args[i])
	}
	return s, nil
}

func noteArg(args []any, i int) (theory.Note, error) {
	s, err := stringArg(args, i)
	if err != nil {
		return theory.Note{}, err
	}
	return theory.Parse(s)
}

// downArg accepts true, a non-zero integer, or the strings "down"/"up".
func downArg(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case int32:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case string:
		switch v {
		case "down":
			return true, nil
		case "up":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: direction %v, want down or up", ErrBadArguments, v)
}
