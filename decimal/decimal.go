package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/real48/integer"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value *integer.Block
	Scale int32
}

// Schema represents a configured truncation.
type Schema struct {
	// Digits is the number of significant digits kept, or the number of
	// fractional digits kept if Fixed is set.
	Digits uint

	Fixed bool
}

// MaxDigits is the largest precision a Schema may ask for. Every float64 is
// exact at 1074 fractional digits (767 significant digits), so no larger
// precision changes a result.
const MaxDigits = 1100

var ten = big.NewInt(10)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// shift returns floor(r * 10^s) for a non-negative r.
func shift(r *big.Rat, s int) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())

	if s >= 0 {
		num.Mul(num, pow10(s))
	} else {
		den.Mul(den, pow10(-s))
	}

	return num.Quo(num, den)
}

// Truncate converts x into a decimal block, discarding every digit past the
// schema's precision. Truncation is toward zero and operates on the exact
// binary value of x.
func Truncate(x float64, schema Schema) (*Block, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, Error.New("not finite: %v", x)
	}

	if !schema.Fixed && schema.Digits == 0 {
		return nil, Error.New("invalid: digits=0")
	}

	if schema.Digits > MaxDigits {
		return nil, Error.New("invalid: digits=%d (max %d)", schema.Digits, MaxDigits)
	}

	if x == 0 {
		return &Block{
			Value: (&integer.Block{}).SetBigInt(new(big.Int)),
		}, nil
	}

	r := new(big.Rat).SetFloat64(math.Abs(x))

	var s int
	if schema.Fixed {
		s = int(schema.Digits)
	} else {
		// Log10 only estimates the magnitude; the loops below correct it.
		s = int(schema.Digits) - 1 - int(math.Floor(math.Log10(math.Abs(x))))
	}

	q := shift(r, s)

	if !schema.Fixed {
		lo := pow10(int(schema.Digits) - 1)
		hi := pow10(int(schema.Digits))

		for q.Cmp(hi) >= 0 {
			s--
			q = shift(r, s)
		}

		for q.Cmp(lo) < 0 {
			s++
			q = shift(r, s)
		}
	}

	if x < 0 {
		q.Neg(q)
	}

	return &Block{
		Value: (&integer.Block{}).SetBigInt(q),
		Scale: int32(-s),
	}, nil
}

// TruncateFloat64 truncates x and returns it as the nearest float64.
func TruncateFloat64(x float64, schema Schema) (float64, error) {
	b, err := Truncate(x, schema)
	if err != nil {
		return 0, err
	}

	return b.Float64(), nil
}

// Rat returns the exact value of the block.
func (b *Block) Rat() *big.Rat {
	r := new(big.Rat).SetInt(b.Value.BigInt())

	switch {
	case b.Scale > 0:
		r.Mul(r, new(big.Rat).SetInt(pow10(int(b.Scale))))
	case b.Scale < 0:
		r.Quo(r, new(big.Rat).SetInt(pow10(int(-b.Scale))))
	}

	return r
}

// Float64 returns the float64 nearest to the block's value.
func (b *Block) Float64() float64 {
	f, _ := b.Rat().Float64()

	return f
}

// Digits returns the number of significant digits in the block.
func (b *Block) Digits() int {
	if b.Value.IsZero() {
		return 0
	}

	m := new(big.Int).SetBytes(b.Value.Value).String()

	return len(strings.TrimRight(m, "0"))
}

// String formats the block in scientific notation (e.g. "-1.5e+00").
func (b *Block) String() string {
	if b.Value.IsZero() {
		return "0"
	}

	m := new(big.Int).SetBytes(b.Value.Value).String()
	exp := int(b.Scale) + len(m) - 1

	var sb strings.Builder
	if b.Value.Negative {
		sb.WriteByte('-')
	}

	sb.WriteByte(m[0])
	if frac := strings.TrimRight(m[1:], "0"); frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	sb.WriteByte('e')
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}

	if exp < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(exp))

	return sb.String()
}
