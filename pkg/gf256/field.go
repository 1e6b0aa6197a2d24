// Package gf256 implements arithmetic over the Galois field GF(2^8)
// defined by the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D),
// together with a fixed-capacity polynomial over that field.
//
// All primitive operations are pure O(1) table lookups against
// process-wide immutable tables; nothing here allocates.
package gf256

// Add returns x + y in GF(256). Addition in a field of characteristic 2
// is bitwise XOR.
func Add(x, y byte) byte {
	return x ^ y
}

// Sub returns x - y in GF(256). Identical to Add: every element is its
// own additive inverse.
func Sub(x, y byte) byte {
	return x ^ y
}

// Mul returns x * y in GF(256).
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return Exp[int(Log[x])+int(Log[y])]
}

// Div returns x / y in GF(256). Dividing by zero is a programmer error
// and panics; the encoders only ever divide by fixed generator
// coefficients, which are never zero.
func Div(x, y byte) byte {
	if y == 0 {
		panic("gf256: division by zero")
	}
	if x == 0 {
		return 0
	}
	return Exp[(int(Log[x])+255-int(Log[y]))%255]
}

// Pow returns x raised to the power n in GF(256). Negative exponents are
// supported; the table index is normalized into [0, 255) before lookup.
func Pow(x byte, n int) byte {
	i := int(Log[x]) * n % 255
	if i < 0 {
		i += 255
	}
	return Exp[i]
}

// Inverse returns the multiplicative inverse of x.
func Inverse(x byte) byte {
	return Exp[255-int(Log[x])]
}
