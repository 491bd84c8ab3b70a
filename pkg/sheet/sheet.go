package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
)

// Op is the kind of question an item asks.
type Op string

// Supported operations.
const (
	OpChord     Op = "chord"
	OpScale     Op = "scale"
	OpTranspose Op = "transpose"
	OpInterval  Op = "interval"
)

// Item is one worksheet question. Musical fields stay strings here so a
// misspelled note fails only its own item.
type Item struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty" jsonschema:"item identifier; generated when empty"`
	Op        Op     `json:"op" yaml:"op" validate:"required,oneof=chord scale transpose interval" jsonschema:"one of chord, scale, transpose, interval"`
	Root      string `json:"root,omitempty" yaml:"root,omitempty" validate:"required_unless=Op interval" jsonschema:"root note, e.g. Eb or f#"`
	Quality   string `json:"quality,omitempty" yaml:"quality,omitempty" jsonschema:"chord quality; major when empty"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty" validate:"required_if=Op scale" jsonschema:"scale kind, e.g. harmonic_minor"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" jsonschema:"scale direction; ascending when empty"`
	Interval  string `json:"interval,omitempty" yaml:"interval,omitempty" validate:"required_if=Op transpose,required_if=Op interval" jsonschema:"interval symbol or name, e.g. m3"`
	Down      bool   `json:"down,omitempty" yaml:"down,omitempty" jsonschema:"transpose downwards"`
	Octave    *int   `json:"octave,omitempty" yaml:"octave,omitempty" validate:"omitempty,min=-1,max=9" jsonschema:"when set, answer with pitches and frequencies from this octave"`
}

// Request is a whole worksheet.
type Request struct {
	Items []Item `json:"items" yaml:"items" validate:"required,min=1,dive"`
}

// ErrInvalidRequest is returned by Validate.
var ErrInvalidRequest = errors.New("sheet: invalid request")

var validate = validator.New()

// Validate checks the request shape and fills in missing item IDs.
func Validate(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, formatValidationErrors(err))
	}
	for i := range req.Items {
		if req.Items[i].ID == "" {
			req.Items[i].ID = uuid.NewString()
		}
	}
	return nil
}

func formatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Schema returns the JSON schema of a worksheet request.
func Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Request](&jsonschema.ForOptions{})
}
