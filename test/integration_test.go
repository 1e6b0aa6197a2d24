package test

import (
	"testing"

	"github.com/Davincible/reedsolomon/pkg/gf256"
	"github.com/Davincible/reedsolomon/pkg/rs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullWorkflow(t *testing.T) {
	// A host splits a payload into blocks, protects each with 16 check
	// bytes, and stores data followed by parity (systematic layout).
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	enc, err := rs.NewWithGenerator(rs.Generator16)
	require.NoError(t, err)

	blockLen := enc.MaxDataLen()
	var stored []byte
	for i := 0; i < len(payload); i += blockLen {
		end := min(i+blockLen, len(payload))
		block := payload[i:end]

		ecc := enc.Encode(block)
		require.Len(t, ecc, 16)

		stored = append(stored, block...)
		stored = append(stored, ecc...)
	}

	t.Logf("Stored %d payload bytes as %d bytes with parity", len(payload), len(stored))
	assert.Greater(t, len(stored), len(payload))

	// The same payload fed through the streaming encoder must produce
	// the identical stored image: the encoder splits blocks itself at
	// the same boundary (BlockDataLen == MaxDataLen), emitting each
	// full block's parity inline; only the trailing partial block
	// needs an explicit flush.
	stream, err := rs.NewStreamWithGenerator(rs.Generator16)
	require.NoError(t, err)
	require.Equal(t, blockLen, stream.BlockDataLen())

	var streamed []byte
	for _, b := range payload {
		streamed = append(streamed, stream.EncodeSingle(b)...)
	}
	ecc, err := stream.Finalize()
	require.NoError(t, err)
	streamed = append(streamed, ecc...)

	assert.Equal(t, stored, streamed)
}

func TestConstructorFormsAgree(t *testing.T) {
	// Runtime generator construction and the precomputed constants are
	// interchangeable.
	constants := map[int][]byte{
		2:  rs.Generator2,
		4:  rs.Generator4,
		8:  rs.Generator8,
		16: rs.Generator16,
	}

	data := []byte("the quick brown fox jumps over the lazy dog")

	for eccLen, gen := range constants {
		assert.Equal(t, gen, rs.GeneratorPoly(eccLen).Bytes())

		fromLen, err := rs.New(eccLen)
		require.NoError(t, err)
		fromGen, err := rs.NewWithGenerator(gen)
		require.NoError(t, err)

		assert.Equal(t, fromLen.Encode(data), fromGen.Encode(data), "eccLen=%d", eccLen)
	}
}

func TestFieldBacksEncoder(t *testing.T) {
	// The batch encoder is polynomial long division: message times x^ecc
	// plus the returned remainder must be divisible by the generator.
	// Spot-check by evaluating the full codeword at every generator
	// root 2^i, which must give zero.
	enc, err := rs.New(8)
	require.NoError(t, err)

	data := []byte{10, 20, 30, 40, 50}
	codeword := append(append([]byte(nil), data...), enc.Encode(data)...)

	for i := 0; i < 8; i++ {
		root := gf256.Pow(2, i)
		acc := byte(0)
		for _, c := range codeword {
			acc = gf256.Add(gf256.Mul(acc, root), c)
		}
		assert.Equal(t, byte(0), acc, "codeword must vanish at root 2^%d", i)
	}
}
