// Package rs computes Reed-Solomon error-correction check bytes over
// GF(256). It produces check bytes only: there is no decoder, syndrome
// computation, or correction here.
//
// Two encoder variants share the same generator construction and
// produce byte-identical output: Encoder works on a whole message held
// in memory, StreamEncoder consumes one byte at a time through a
// constant-size rotating buffer so data larger than memory can be
// encoded. Neither variant allocates after construction, and neither is
// safe for concurrent use; concurrent callers need distinct instances.
package rs

import (
	"fmt"

	"github.com/Davincible/reedsolomon/pkg/gf256"
)

// maxBlock is the GF(256) symbol limit: one codeword (data + ECC) can
// carry at most 255 symbols. The scratch buffer adds one slot for the
// generator's monic leading coefficient.
const maxBlock = 255

// Encoder computes ECC bytes for a whole message at once via
// polynomial synthetic division by the generator.
type Encoder struct {
	gen     []byte // generator coefficients, len == eccLen+1, gen[0] == 1
	lgen    []byte // discrete logs of gen, cached at construction
	scratch [maxBlock + 1]byte
	out     [maxBlock]byte
}

// New returns an Encoder producing eccLen check bytes, constructing the
// generator polynomial of that degree.
func New(eccLen int) (*Encoder, error) {
	if eccLen < 1 || eccLen > maxBlock-1 {
		return nil, fmt.Errorf("ecc length must be in [1, %d], got %d", maxBlock-1, eccLen)
	}
	return newEncoder(GeneratorPoly(eccLen).Bytes()), nil
}

// NewWithGenerator returns an Encoder using a precomputed generator
// polynomial, e.g. one of the Generator* constants. The ECC length is
// gen's length minus one. A malformed generator is a recoverable
// construction error, not a panic.
func NewWithGenerator(gen []byte) (*Encoder, error) {
	if err := validateGenerator(gen); err != nil {
		return nil, err
	}
	return newEncoder(gen), nil
}

func newEncoder(gen []byte) *Encoder {
	e := &Encoder{
		gen:  append([]byte(nil), gen...),
		lgen: generatorLogs(gen),
	}
	return e
}

// EccLen returns the number of check bytes produced per message.
func (e *Encoder) EccLen() int {
	return len(e.gen) - 1
}

// MaxDataLen returns the longest message Encode accepts: the 255-symbol
// block limit minus the check bytes.
func (e *Encoder) MaxDataLen() int {
	return maxBlock - e.EccLen()
}

// Encode returns the ECC bytes for data. The data slice is not
// modified (the encoding is systematic: the host transmits or stores
// data followed by the returned check bytes).
//
// The returned slice aliases an internal buffer and is valid until the
// next Encode call. Passing more than MaxDataLen bytes overflows the
// fixed scratch buffer and panics: silently truncating would produce
// check bytes that validate nothing downstream.
func (e *Encoder) Encode(data []byte) []byte {
	if len(data)+len(e.gen) > len(e.scratch) {
		panic("rs: data exceeds encoder scratch capacity")
	}

	eccLen := e.EccLen()
	scratch := e.scratch[:len(data)+eccLen]
	copy(scratch, data)
	for i := len(data); i < len(scratch); i++ {
		scratch[i] = 0
	}

	// Synthetic division: eliminate each data position against the
	// generator. The pivot's log is computed once per row so the inner
	// loop is a single table lookup per coefficient.
	for i := 0; i < len(data); i++ {
		coef := scratch[i]
		if coef == 0 {
			continue
		}
		lcoef := int(gf256.Log[coef])
		for j := 1; j < len(e.gen); j++ {
			scratch[i+j] ^= gf256.Exp[lcoef+int(e.lgen[j])]
		}
	}

	// The remainder left past the data region is the parity.
	ecc := e.out[:eccLen]
	copy(ecc, scratch[len(data):])
	return ecc
}

func validateGenerator(gen []byte) error {
	if len(gen) < 2 {
		return fmt.Errorf("generator must have at least 2 coefficients, got %d", len(gen))
	}
	if len(gen) > maxBlock {
		return fmt.Errorf("generator cannot exceed %d coefficients, got %d", maxBlock, len(gen))
	}
	if gen[0] != 1 {
		return fmt.Errorf("generator must be monic, got leading coefficient %d", gen[0])
	}
	return nil
}

// generatorLogs caches the discrete log of every generator coefficient
// so encoding rounds avoid repeated Log lookups. Interior coefficients
// of a Reed-Solomon generator are never zero, so the logs are always
// defined.
func generatorLogs(gen []byte) []byte {
	lgen := make([]byte, len(gen))
	for i, g := range gen {
		lgen[i] = gf256.Log[g]
	}
	return lgen
}
