package real48

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("real48")

// Size is the number of bytes in a Real48.
const Size = 6

// Real48 is the raw 6 byte value. See the package documentation for the
// layout.
type Real48 [Size]byte

// Field masks and offsets.
const (
	signMask     byte = 0b1000_0000
	fragmentMask byte = 0b0111_1111

	// bias is the Real48 exponent bias subtracted from the binary64 bias.
	bias = 1023 - 129

	exponentShift    = 52
	significandShift = 52 - 39
)

// Parse copies data into a Real48. Any length other than Size is rejected.
func Parse(data []byte) (r Real48, err error) {
	if len(data) != Size {
		return r, Error.New("invalid length: %d (expected %d)", len(data), Size)
	}

	copy(r[:], data)

	return r, nil
}

// Sign returns the sign bit.
func (r Real48) Sign() uint8 {
	return (r[0] & signMask) >> 7
}

// Significand returns the 39 bit mantissa without the implied leading 1.
func (r Real48) Significand() uint64 {
	return uint64(r[0]&fragmentMask)<<32 |
		uint64(r[1])<<24 |
		uint64(r[2])<<16 |
		uint64(r[3])<<8 |
		uint64(r[4])
}

// Exponent returns the biased exponent.
func (r Real48) Exponent() uint8 {
	return r[5]
}

// IsZero reports whether r encodes zero.
func (r Real48) IsZero() bool {
	return r.Exponent() == 0
}

// Bits returns the IEEE 754 binary64 pattern for r. Zero maps to +0.
func (r Real48) Bits() uint64 {
	if r.IsZero() {
		return 0
	}

	return uint64(r.Sign())<<63 |
		(uint64(r.Exponent())+bias)<<exponentShift |
		r.Significand()<<significandShift
}

// DecodeBits returns r as a float64 without truncating to decimal precision.
func DecodeBits(r Real48) float64 {
	return math.Float64frombits(r.Bits())
}

// Decode returns r as a float64 truncated toward zero to DefaultPrecision
// significant digits.
func Decode(r Real48) float64 {
	return defaultDecoder.Decode(r).Float64()
}
