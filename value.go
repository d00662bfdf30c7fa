package real48

import (
	"strconv"

	"github.com/calebcase/oops"
)

// Value is a decoded Real48 together with the bytes it was decoded from. A
// Value is never re-encoded; Bytes always returns the original input.
type Value struct {
	raw   Real48
	value float64
}

// New decodes r with the default schema.
func New(r Real48) *Value {
	return defaultDecoder.Decode(r)
}

// Float64 returns the decoded value.
func (v *Value) Float64() float64 {
	return v.value
}

// Real48 returns the raw value.
func (v *Value) Real48() Real48 {
	return v.raw
}

// Bytes returns a copy of the original bytes.
func (v *Value) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, v.raw[:])

	return b
}

// String formats the decoded value in the shortest form that reads back as
// Float64. It never rounds, so it carries no more digits than the schema
// kept.
func (v *Value) String() string {
	return strconv.FormatFloat(v.value, 'g', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (v *Value) MarshalText() (text []byte, err error) {
	return []byte(v.String()), nil
}

// MarshalBinary implements encoding.BinaryMarshaler. It returns the original
// bytes.
func (v *Value) MarshalBinary() (data []byte, err error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It decodes data with
// the default schema.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	nv, err := defaultDecoder.Parse(data)
	if err != nil {
		return oops.Trace(err)
	}

	*v = *nv

	return nil
}
