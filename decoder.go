package real48

import (
	"github.com/calebcase/oops"

	"github.com/calebcase/real48/decimal"
)

// DefaultPrecision is the number of significant decimal digits a Real48
// carries.
const DefaultPrecision = 11

// Schema represents a configured decoding.
type Schema struct {
	// Precision is the number of digits kept. Zero means DefaultPrecision.
	Precision uint

	// Fixed keeps Precision fractional digits instead of Precision
	// significant digits.
	Fixed bool

	// Exact disables truncation entirely.
	Exact bool
}

// Decoder is a decoder. It is safe for concurrent use.
type Decoder struct {
	schema Schema
}

var defaultDecoder = NewDecoder(Schema{})

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	if schema.Precision == 0 {
		schema.Precision = DefaultPrecision
	}

	// Beyond MaxDigits truncation no longer changes any float64.
	if schema.Precision > decimal.MaxDigits {
		schema.Precision = decimal.MaxDigits
	}

	return &Decoder{
		schema: schema,
	}
}

// Schema returns the decoder's schema with defaults applied.
func (d *Decoder) Schema() Schema {
	return d.schema
}

// Decode converts r.
func (d *Decoder) Decode(r Real48) *Value {
	v := &Value{
		raw:   r,
		value: DecodeBits(r),
	}

	if !d.schema.Exact && !r.IsZero() {
		f, err := decimal.TruncateFloat64(v.value, decimal.Schema{
			Digits: d.schema.Precision,
			Fixed:  d.schema.Fixed,
		})
		if err != nil {
			// Unreachable: a non-zero Real48 is always finite and
			// NewDecoder keeps Precision within 1..MaxDigits.
			panic(err)
		}

		v.value = f
	}

	return v
}

// Parse checks the length of data and converts it.
func (d *Decoder) Parse(data []byte) (*Value, error) {
	r, err := Parse(data)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return d.Decode(r), nil
}
