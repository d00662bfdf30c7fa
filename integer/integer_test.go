package integer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigInt(t *testing.T) {
	type TC struct {
		name string
		i    *big.Int
		blk  *Block
	}

	tcs := []TC{
		{
			name: "+0",
			i:    big.NewInt(0),
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
				Negative: false,
			},
		},
		{
			name: "+1",
			i:    big.NewInt(1),
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: false,
			},
		},
		{
			name: "-1",
			i:    big.NewInt(-1),
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
		},
		{
			name: "+256",
			i:    big.NewInt(256),
			blk: &Block{
				Value: []byte{
					0b0000_0001,
					0b0000_0000,
				},
				Negative: false,
			},
		},
		{
			name: "-99999999999",
			i:    big.NewInt(-99999999999),
			blk: &Block{
				Value: []byte{
					0x17, 0x48, 0x76, 0xe7, 0xff,
				},
				Negative: true,
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			blk := (&Block{}).SetBigInt(tc.i)
			require.Equal(t, tc.blk, blk)

			i := blk.BigInt()
			require.Equal(t, 0, tc.i.Cmp(i), "got %s", i)
		})
	}
}

func TestSetBigIntDoesNotAlias(t *testing.T) {
	i := big.NewInt(-42)

	blk := (&Block{}).SetBigInt(i)
	require.Equal(t, int64(-42), i.Int64())
	require.True(t, blk.Negative)

	i.SetInt64(7)
	require.Equal(t, int64(-42), blk.BigInt().Int64())
}

func TestIsZero(t *testing.T) {
	require.True(t, (&Block{}).IsZero())
	require.True(t, (&Block{Value: []byte{0, 0}}).IsZero())
	require.True(t, (&Block{}).SetBigInt(big.NewInt(0)).IsZero())
	require.False(t, (&Block{}).SetBigInt(big.NewInt(-3)).IsZero())
}
