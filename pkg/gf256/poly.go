package gf256

import (
	"fmt"
	"strings"
)

// Poly is an ordered sequence of GF(256) coefficients with a capacity
// fixed at construction and a mutable logical length. The backing array
// is allocated exactly once; no operation grows it.
//
// Shrinking the logical length leaves stale coefficients beyond it, so
// the container is marked dirty. A later growth while dirty zero-fills
// the newly exposed range before it becomes visible again: callers
// logically treat out-of-range reads as zero, and this lazy fill keeps
// that true without clearing the whole capacity on every shrink.
type Poly struct {
	coeffs []byte // len(coeffs) == capacity, never reallocated
	length int
	dirty  bool
}

// NewPoly returns an empty polynomial with the given fixed capacity.
func NewPoly(capacity int) *Poly {
	return &Poly{coeffs: make([]byte, capacity)}
}

// NewPolyWithLength returns a zero-filled polynomial of the given
// logical length and fixed capacity.
func NewPolyWithLength(capacity, length int) *Poly {
	if length > capacity {
		panic("gf256: poly length exceeds capacity")
	}
	p := NewPoly(capacity)
	p.length = length
	return p
}

// PolyFromBytes returns a polynomial with the given fixed capacity whose
// logical region is a copy of b.
func PolyFromBytes(capacity int, b []byte) *Poly {
	if len(b) > capacity {
		panic("gf256: poly capacity exceeded")
	}
	p := NewPoly(capacity)
	copy(p.coeffs, b)
	p.length = len(b)
	return p
}

// Len returns the logical length.
func (p *Poly) Len() int {
	return p.length
}

// Cap returns the fixed capacity.
func (p *Poly) Cap() int {
	return len(p.coeffs)
}

// At returns the coefficient at index i within the logical region.
func (p *Poly) At(i int) byte {
	if i >= p.length {
		panic("gf256: poly index out of range")
	}
	return p.coeffs[i]
}

// Set stores x at index i within the logical region.
func (p *Poly) Set(i int, x byte) {
	if i >= p.length {
		panic("gf256: poly index out of range")
	}
	p.coeffs[i] = x
}

// Push appends one coefficient. Pushing past capacity is a programmer
// error and panics rather than silently truncating.
func (p *Poly) Push(x byte) {
	if p.length == len(p.coeffs) {
		panic("gf256: poly capacity exceeded")
	}
	p.coeffs[p.length] = x
	p.length++
}

// SetLength changes the logical length. Shrinking marks the polynomial
// dirty; growing while dirty zero-fills the newly exposed range
// [old, n). The dirty flag stays set once raised: later growth must keep
// zeroing, since untouched capacity beyond any previous high-water mark
// may still hold stale data.
func (p *Poly) SetLength(n int) {
	if n > len(p.coeffs) {
		panic("gf256: poly capacity exceeded")
	}
	old := p.length
	p.length = n

	if p.dirty && n > old {
		for i := old; i < n; i++ {
			p.coeffs[i] = 0
		}
	} else if n < old {
		p.dirty = true
	}
}

// Reverse flips the logical region in place. Used when a coefficient
// order convention must change between highest-degree-first and
// lowest-degree-first.
func (p *Poly) Reverse() {
	for i, j := 0, p.length-1; i < j; i, j = i+1, j-1 {
		p.coeffs[i], p.coeffs[j] = p.coeffs[j], p.coeffs[i]
	}
}

// Mul returns the product of p and other: a convolution over GF(256).
// The result has length len(p)+len(other)-1 and its capacity is exactly
// that length.
func (p *Poly) Mul(other *Poly) *Poly {
	n := p.length + other.length - 1
	out := NewPolyWithLength(n, n)
	for i := 0; i < p.length; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		for j := 0; j < other.length; j++ {
			out.coeffs[i+j] ^= Mul(p.coeffs[i], other.coeffs[j])
		}
	}
	return out
}

// Bytes returns the logical region as a byte slice. The slice aliases
// the polynomial's backing array.
func (p *Poly) Bytes() []byte {
	return p.coeffs[:p.length]
}

func (p *Poly) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < p.length; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", p.coeffs[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
