package rs

import (
	"errors"
	"fmt"

	"github.com/Davincible/reedsolomon/pkg/gf256"
)

// ErrEmpty is returned by Finalize when no bytes were buffered since
// construction or the last reset. It distinguishes "nothing to
// finalize" from a valid, possibly all-zero, remainder.
var ErrEmpty = errors.New("rs: finalize on empty stream encoder")

// StreamEncoder computes the same check bytes as Encoder, one input
// byte at a time, using a rotating scratch buffer of exactly
// eccLen+1 bytes. It is the variant for data larger than available
// memory: the host feeds bytes through EncodeSingle, forwards the
// pass-through output as it comes, and receives the remainder from
// Finalize (or inline, when a block fills up).
//
// A session moves through three phases:
//
//   - filling: the scratch buffer accumulates raw input until it holds
//     len(generator) bytes; each call just echoes its input byte.
//   - steady: each new byte triggers one encoding round on the window
//     (the same inner loop as the batch encoder, one row), then the
//     buffer rotates left and the new byte enters at the tail.
//   - finalizing: triggered by Finalize, or implicitly once a block's
//     worth of data (255 - eccLen bytes, filling a 255-symbol block)
//     has been consumed. The remaining rounds run with zero padding
//     and the buffer's first eccLen bytes are the remainder.
type StreamEncoder struct {
	gen    []byte // generator coefficients, len == eccLen+1, gen[0] == 1
	lgen   []byte // discrete logs of gen, cached at construction
	buf    []byte // rotating scratch window, len == len(gen)
	count  int    // bytes consumed since the last reset
	out    []byte // chunk buffer returned by EncodeSingle, cap 1+eccLen
	eccOut []byte // remainder buffer returned by Finalize, len eccLen
}

// NewStream returns a StreamEncoder producing eccLen check bytes per
// block, constructing the generator polynomial of that degree.
func NewStream(eccLen int) (*StreamEncoder, error) {
	if eccLen < 1 || eccLen > maxBlock-1 {
		return nil, fmt.Errorf("ecc length must be in [1, %d], got %d", maxBlock-1, eccLen)
	}
	return newStreamEncoder(GeneratorPoly(eccLen).Bytes()), nil
}

// NewStreamWithGenerator returns a StreamEncoder using a precomputed
// generator polynomial, e.g. one of the Generator* constants. The ECC
// length is gen's length minus one. A malformed generator is a
// recoverable construction error, not a panic.
func NewStreamWithGenerator(gen []byte) (*StreamEncoder, error) {
	if err := validateGenerator(gen); err != nil {
		return nil, err
	}
	return newStreamEncoder(gen), nil
}

func newStreamEncoder(gen []byte) *StreamEncoder {
	return &StreamEncoder{
		gen:    append([]byte(nil), gen...),
		lgen:   generatorLogs(gen),
		buf:    make([]byte, len(gen)),
		out:    make([]byte, 0, len(gen)),
		eccOut: make([]byte, len(gen)-1),
	}
}

// EccLen returns the number of check bytes produced per block.
func (s *StreamEncoder) EccLen() int {
	return len(s.gen) - 1
}

// BlockDataLen returns how many data bytes fit in one block before the
// encoder finalizes implicitly. It equals the batch encoder's
// MaxDataLen: a full block carries exactly 255 symbols of data plus
// check bytes.
func (s *StreamEncoder) BlockDataLen() int {
	return maxBlock - s.EccLen()
}

// EncodeSingle consumes one data byte and returns the bytes the host
// should forward: the input byte as pass-through, followed by the
// block's check bytes when this byte completed a block. The returned
// slice aliases an internal buffer and is valid until the next call.
func (s *StreamEncoder) EncodeSingle(b byte) []byte {
	if s.count < len(s.gen) {
		s.buf[s.count] = b
	} else {
		s.round()
		s.rotate(b)
	}
	s.count++

	s.out = append(s.out[:0], b)
	if s.count == s.BlockDataLen() {
		// Block is full: close it out inline so the host never has to
		// track the 255-symbol limit itself.
		s.out = append(s.out, s.remainder()...)
		s.Reset()
	}
	return s.out
}

// Finalize runs the remaining zero-padded encoding rounds, returns the
// block's check bytes, and resets the encoder for the next block. It
// returns ErrEmpty if no bytes were consumed since the last reset.
// The returned slice aliases an internal buffer and is valid until the
// next EncodeSingle or Finalize call.
func (s *StreamEncoder) Finalize() ([]byte, error) {
	if s.count == 0 {
		return nil, ErrEmpty
	}
	ecc := s.remainder()
	s.Reset()
	return ecc, nil
}

// Reset clears the scratch buffer and byte counter without emitting a
// remainder. The next EncodeSingle starts a fresh block.
func (s *StreamEncoder) Reset() {
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.count = 0
}

// remainder finishes the division and returns the check bytes. When
// the stream never left the filling phase (count < len(gen)) the
// untouched buffer tail is already zero, and only count rounds run:
// exactly the rounds the batch encoder would run for that many real
// data bytes.
func (s *StreamEncoder) remainder() []byte {
	rounds := s.count
	if rounds > len(s.gen) {
		rounds = len(s.gen)
	}
	for i := 0; i < rounds; i++ {
		s.round()
		s.rotate(0)
	}
	copy(s.eccOut, s.buf[:s.EccLen()])
	return s.eccOut
}

// round eliminates the window's leading byte against the generator:
// one row of the batch encoder's synthetic division.
func (s *StreamEncoder) round() {
	coef := s.buf[0]
	if coef == 0 {
		return
	}
	lcoef := int(gf256.Log[coef])
	for j := 1; j < len(s.gen); j++ {
		s.buf[j] ^= gf256.Exp[lcoef+int(s.lgen[j])]
	}
}

// rotate shifts the window left by one and inserts b at the tail.
func (s *StreamEncoder) rotate(b byte) {
	copy(s.buf, s.buf[1:])
	s.buf[len(s.buf)-1] = b
}
