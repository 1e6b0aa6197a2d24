package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyPush(t *testing.T) {
	p := NewPoly(10)
	for i := 0; i < 10; i++ {
		p.Push(byte(i))
		require.Equal(t, i+1, p.Len())
		for j := 0; j <= i; j++ {
			assert.Equal(t, byte(j), p.At(j))
		}
	}

	assert.Panics(t, func() { p.Push(0xff) }, "push past capacity must be fatal")
}

func TestPolyReverse(t *testing.T) {
	p := PolyFromBytes(6, []byte{5, 4, 3, 2, 1, 0})
	p.Reverse()
	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(i), p.At(i))
	}
}

func TestPolySetLengthZeroFillsAfterShrink(t *testing.T) {
	p := PolyFromBytes(8, []byte{1, 1, 1, 1, 1, 1, 1, 1})

	// Shrink marks the polynomial dirty; the regrow must expose zeros,
	// not the stale ones.
	p.SetLength(2)
	p.SetLength(6)

	require.Equal(t, 6, p.Len())
	for i := 0; i < 2; i++ {
		assert.Equal(t, byte(1), p.At(i), "surviving coefficient %d", i)
	}
	for i := 2; i < 6; i++ {
		assert.Equal(t, byte(0), p.At(i), "regrown coefficient %d", i)
	}
}

func TestPolySetLengthCleanGrowKeepsData(t *testing.T) {
	p := NewPoly(4)
	p.Push(7)
	p.Push(9)

	// Growing a never-shrunk polynomial exposes the zero-initialized
	// backing array as-is.
	p.SetLength(4)
	assert.Equal(t, []byte{7, 9, 0, 0}, p.Bytes())
}

func TestPolySetLengthPastCapacityPanics(t *testing.T) {
	p := NewPoly(4)
	assert.Panics(t, func() { p.SetLength(5) })
}

func TestPolyMul(t *testing.T) {
	tests := []struct {
		name string
		a    []byte
		b    []byte
		want []byte
	}{
		{
			name: "Identity",
			a:    []byte{1},
			b:    []byte{1, 15, 54, 120, 64},
			want: []byte{1, 15, 54, 120, 64},
		},
		{
			name: "First two generator monomials",
			a:    []byte{1, 1}, // (x - 2^0)
			b:    []byte{1, 2}, // (x - 2^1)
			want: []byte{1, 3, 2},
		},
		{
			name: "Scaling by a constant",
			a:    []byte{2},
			b:    []byte{1, 3, 2},
			want: []byte{2, 6, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := PolyFromBytes(len(tt.a), tt.a)
			b := PolyFromBytes(len(tt.b), tt.b)

			got := a.Mul(b)
			require.Equal(t, len(tt.a)+len(tt.b)-1, got.Len())
			assert.Equal(t, tt.want, got.Bytes())

			// Convolution is commutative.
			assert.Equal(t, tt.want, b.Mul(a).Bytes())
		})
	}
}

func TestPolyFromBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	p := PolyFromBytes(4, src)
	src[0] = 99
	assert.Equal(t, byte(1), p.At(0))

	assert.Panics(t, func() { PolyFromBytes(2, []byte{1, 2, 3}) })
}

func TestPolyString(t *testing.T) {
	p := PolyFromBytes(3, []byte{1, 3, 2})
	assert.Equal(t, "[1 3 2]", p.String())
}
