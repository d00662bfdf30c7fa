package integer

import (
	"math/big"
)

// Block is a signed integer number stored as a big-endian magnitude and a
// sign.
type Block struct {
	Value    []byte
	Negative bool
}

// SetBigInt sets b to the value of i and returns b.
func (b *Block) SetBigInt(i *big.Int) *Block {
	b.Negative = i.Sign() < 0

	b.Value = new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
		b.Negative = false
	}

	return b
}

// BigInt returns the value of b as a new big.Int.
func (b *Block) BigInt() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// IsZero reports whether b is zero.
func (b *Block) IsZero() bool {
	for _, v := range b.Value {
		if v != 0 {
			return false
		}
	}

	return true
}
