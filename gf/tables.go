package gf

import "sync"

// lowTable[s][j]  = Mul(s, j)      for j in [0,16)
// highTable[s][j] = Mul(s, j<<4)   for j in [0,16)
//
// These are the two 16-entry rows the PSHUFB/TBL byte-shuffle technique
// looks up: multiplying a byte x by scalar s reduces to
// lowTable[s][x&0x0F] ^ highTable[s][x>>4]. galois_amd64.go's comment block
// (in the reedsolomon vendor tree) documents the identical algorithm for its
// own field; here the table contents are generated for this package's
// polynomial/generator instead of being reused from that package.
var (
	lowTable  [256][16]byte
	highTable [256][16]byte

	// mulTable is the full byte-to-byte product table: mulTable[s][x] = Mul(s, x).
	// It backs the scalar fallback tail the way reedsolomon's galois_noasm.go
	// uses its own mulTable for the non-accelerated path.
	mulTable [256][256]byte

	tablesOnce sync.Once
)

func init() {
	buildTables()
}

func buildTables() {
	tablesOnce.Do(func() {
		for s := 0; s < 256; s++ {
			for j := 0; j < 16; j++ {
				lowTable[s][j] = Mul(byte(s), byte(j))
				highTable[s][j] = Mul(byte(s), byte(j<<4))
			}
			for x := 0; x < 256; x++ {
				mulTable[s][x] = Mul(byte(s), byte(x))
			}
		}
	})
}

// mulByte multiplies x by scalar s using the low/high nibble tables. This is
// the scalar-side implementation of the PSHUFB/TBL algorithm every SIMD tier
// below is built from, so all tiers agree on the byte value they produce.
func mulByte(s, x byte) byte {
	return lowTable[s][x&0x0F] ^ highTable[s][x>>4]
}
