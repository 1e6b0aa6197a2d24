package rs

import "github.com/Davincible/reedsolomon/pkg/gf256"

// Precomputed generator polynomials for common ECC lengths, ready to be
// passed to NewWithGenerator / NewStreamWithGenerator so hosts can skip
// the runtime construction entirely. Each is monic with eccLen+1
// coefficients. Treat these as read-only.
var (
	Generator2 = []byte{1, 3, 2}
	Generator4 = []byte{1, 15, 54, 120, 64}
	Generator8 = []byte{1, 255, 11, 81, 54, 239, 173, 200, 24}

	Generator16 = []byte{
		1, 59, 13, 104, 189, 68, 209, 30, 8,
		163, 65, 41, 229, 98, 50, 36, 59,
	}
)

// GeneratorPoly builds the degree-eccLen Reed-Solomon generator
// polynomial: the product of the monomials (x - 2^i) for i in
// [0, eccLen). The result is monic with eccLen+1 coefficients.
func GeneratorPoly(eccLen int) *gf256.Poly {
	gen := gf256.PolyFromBytes(1, []byte{1})
	mm := gf256.PolyFromBytes(2, []byte{1, 0})
	for i := 0; i < eccLen; i++ {
		mm.Set(1, gf256.Pow(2, i))
		gen = gen.Mul(mm)
	}
	return gen
}
