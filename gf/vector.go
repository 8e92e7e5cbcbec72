package gf

import "github.com/templexxx/xorsimd"

// MulVecByScalar multiplies every byte of v by the scalar s, in place.
// It short-circuits for s==0 (the vector becomes all zero) and s==1 (no-op),
// exactly as spec.md §4.1 requires.
func MulVecByScalar(v []byte, s byte) {
	if s == 1 || len(v) == 0 {
		return
	}
	if s == 0 {
		clear(v)
		return
	}
	vectorMul(v, v, s, activeTier)
}

// AddVectors computes dst[i] ^= src[i] for all i. len(dst) must equal
// len(src); a mismatch is a caller bug and panics, matching spec.md §4.1's
// "lengths must be equal" contract (internal invariant, not a reportable
// Encoder/Decoder/Recoder error).
func AddVectors(dst, src []byte) {
	if len(dst) != len(src) {
		panic("gf: AddVectors length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	// Field addition is XOR regardless of the polynomial chosen for
	// multiplication, so the real hardware-accelerated kernel from
	// templexxx/xorsimd (the same one xtaci/kcptun carries transitively)
	// is safe to reuse verbatim here.
	xorsimd.Bytes(dst, dst, src)
}

// FMA computes dst[i] ^= Mul(src[i], s) for all i ("fused multiply-add").
// len(dst) must equal len(src). Short-circuits for s==0 (no-op) and s==1
// (delegates to AddVectors), per spec.md §4.1.
func FMA(dst, src []byte, s byte) {
	if len(dst) != len(src) {
		panic("gf: FMA length mismatch")
	}
	if s == 0 || len(dst) == 0 {
		return
	}
	if s == 1 {
		AddVectors(dst, src)
		return
	}
	vectorFMA(dst, src, s, activeTier)
}

// vectorMul writes Mul(src[i], s) into dst for all i, processing chunkSize
// groups at a time the way galMulSlice in reedsolomon/galois_amd64.go peels
// off 64/32/16-byte groups before falling to the scalar tail. Every tier
// computes the identical per-byte value via mulByte (the low/high nibble
// table algorithm), so all tiers are bit-identical by construction; the
// chunking exists to mirror the dispatch architecture spec.md §4.1
// describes, not to change the result.
func vectorMul(dst, src []byte, s byte, tier Tier) {
	low := &lowTable[s]
	high := &highTable[s]
	chunk := tier.chunkSize()
	n := len(src)
	done := (n / chunk) * chunk
	for i := 0; i < done; i += chunk {
		for j := 0; j < chunk; j++ {
			x := src[i+j]
			dst[i+j] = low[x&0x0F] ^ high[x>>4]
		}
	}
	mt := &mulTable[s]
	for i := done; i < n; i++ {
		dst[i] = mt[src[i]]
	}
}

func vectorFMA(dst, src []byte, s byte, tier Tier) {
	low := &lowTable[s]
	high := &highTable[s]
	chunk := tier.chunkSize()
	n := len(src)
	done := (n / chunk) * chunk
	for i := 0; i < done; i += chunk {
		for j := 0; j < chunk; j++ {
			x := src[i+j]
			dst[i+j] ^= low[x&0x0F] ^ high[x>>4]
		}
	}
	mt := &mulTable[s]
	for i := done; i < n; i++ {
		dst[i] ^= mt[src[i]]
	}
}
