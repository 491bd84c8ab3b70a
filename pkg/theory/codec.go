package theory

import (
	"encoding"

	"github.com/vmihailenco/msgpack/v5"
)

// Every value type encodes as its text form. JSON and YAML pick this up
// through encoding.TextMarshaler; msgpack goes through the Marshaler hooks
// below so decoding validates exactly like Parse does.

// MarshalText implements encoding.TextMarshaler.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Note) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (n Note) MarshalMsgpack() ([]byte, error) {
	return marshalMsgpackText(n)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (n *Note) UnmarshalMsgpack(data []byte) error {
	return unmarshalMsgpackText(data, n)
}

// MarshalText implements encoding.TextMarshaler.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(text []byte) error {
	v, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (i Interval) MarshalMsgpack() ([]byte, error) {
	return marshalMsgpackText(i)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (i *Interval) UnmarshalMsgpack(data []byte) error {
	return unmarshalMsgpackText(data, i)
}

// MarshalText implements encoding.TextMarshaler.
func (q ChordQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *ChordQuality) UnmarshalText(text []byte) error {
	v, err := ParseChordQuality(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (q ChordQuality) MarshalMsgpack() ([]byte, error) {
	return marshalMsgpackText(q)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (q *ChordQuality) UnmarshalMsgpack(data []byte) error {
	return unmarshalMsgpackText(data, q)
}

// MarshalText implements encoding.TextMarshaler.
func (k ScaleKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ScaleKind) UnmarshalText(text []byte) error {
	v, err := ParseScaleKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (k ScaleKind) MarshalMsgpack() ([]byte, error) {
	return marshalMsgpackText(k)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (k *ScaleKind) UnmarshalMsgpack(data []byte) error {
	return unmarshalMsgpackText(data, k)
}

// MarshalText implements encoding.TextMarshaler.
func (d ScaleDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *ScaleDirection) UnmarshalText(text []byte) error {
	v, err := ParseScaleDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (d ScaleDirection) MarshalMsgpack() ([]byte, error) {
	return marshalMsgpackText(d)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (d *ScaleDirection) UnmarshalMsgpack(data []byte) error {
	return unmarshalMsgpackText(data, d)
}

func marshalMsgpackText(v encoding.TextMarshaler) ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(string(text))
}

func unmarshalMsgpackText(data []byte, v encoding.TextUnmarshaler) error {
	var s string
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}
