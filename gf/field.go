// Package gf implements arithmetic over GF(2⁸) with irreducible polynomial
// x⁸+x⁴+x³+x+1 (0x11B) and primitive element α=3.
//
// Addition and subtraction are XOR; multiplication and inversion go through
// precomputed log/antilog tables built once at init time. The table contents
// are specific to this polynomial and generator and must not be confused with
// the tables used by Reed-Solomon libraries built on a different polynomial
// (e.g. 0x11D) — reusing those here would silently break wire compatibility.
package gf

import "github.com/pkg/errors"

// Poly is the irreducible polynomial defining the field, x⁸+x⁴+x³+x+1.
const Poly = 0x11B

// Generator is the primitive element used to build the log/exp tables.
const Generator = 3

// ErrZeroInverse is returned by Inv when asked to invert the zero element,
// which has no multiplicative inverse in any field.
var ErrZeroInverse = errors.New("gf: zero element has no multiplicative inverse")

// logTable[a] = i such that Generator^i == a, for a != 0. logTable[0] is
// unused (zero is handled by explicit short-circuit everywhere).
var logTable [256]byte

// expTable is doubled in length (510 entries) so that
// expTable[logTable[a]+logTable[b]] needs no modular reduction of the
// exponent sum for nonzero a, b.
var expTable [510]byte

func init() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		expTable[i] = x
		logTable[x] = byte(i)
		x = mulReduce(x, Generator)
	}
	for i := 255; i < 510; i++ {
		expTable[i] = expTable[i-255]
	}
}

// mulReduce multiplies two field elements by carryless multiplication
// followed by reduction modulo Poly. It is the ground-truth reference used
// to build the log/exp tables and is re-exercised by property tests against
// the table-driven Mul; it is intentionally not used on the hot path.
func mulReduce(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= byte(Poly & 0xFF)
		}
		b >>= 1
	}
	return p
}

// Add returns a+b in GF(2⁸), which is the same as subtraction.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a-b in GF(2⁸); identical to Add since char(GF(2⁸)) == 2.
func Sub(a, b byte) byte { return a ^ b }

// Neg returns -a in GF(2⁸); identical to the identity since char == 2.
func Neg(a byte) byte { return a }

// Mul returns a*b in GF(2⁸) via the log/exp tables, short-circuiting on zero.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+int(logTable[b])]
}

// Inv returns the multiplicative inverse of a nonzero field element.
// Inv(0) returns (0, ErrZeroInverse).
func Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}
	return expTable[255-int(logTable[a])], nil
}

// Log returns the discrete log of a nonzero element base Generator.
func Log(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}
	return logTable[a], nil
}

// Exp returns Generator^i, where i is taken modulo 255.
func Exp(i int) byte {
	return expTable[i%255]
}
