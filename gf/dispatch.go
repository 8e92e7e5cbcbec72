package gf

import "github.com/klauspost/cpuid/v2"

// Tier identifies which vector backend MulVecByScalar/FMA select at runtime.
// The preference order mirrors spec.md §4.1 and reedsolomon/options.go's
// cpuid-gated defaultOptions: GFNI, then AVX-512BW, AVX2, SSSE3, NEON, and
// finally the scalar byte-at-a-time fallback.
type Tier int

const (
	TierScalar Tier = iota
	TierNEON
	TierSSSE3
	TierAVX2
	TierAVX512
	TierGFNI
)

func (t Tier) String() string {
	switch t {
	case TierGFNI:
		return "gfni"
	case TierAVX512:
		return "avx512"
	case TierAVX2:
		return "avx2"
	case TierSSSE3:
		return "ssse3"
	case TierNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// chunkSize is the number of bytes each tier's "vector lane" batches
// together before falling to the scalar tail. These match the real
// instruction widths the tier names refer to (reedsolomon/galois_amd64.go
// uses the same 16/32/64-byte groupings for SSSE3/AVX2/AVX-512).
func (t Tier) chunkSize() int {
	switch t {
	case TierGFNI, TierAVX512:
		return 64
	case TierAVX2:
		return 32
	case TierSSSE3, TierNEON:
		return 16
	default:
		return 1
	}
}

var activeTier = detectTier()

func detectTier() Tier {
	switch {
	case cpuid.CPU.Supports(cpuid.GFNI, cpuid.AVX512F, cpuid.AVX512BW):
		return TierGFNI
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL):
		return TierAVX512
	case cpuid.CPU.Supports(cpuid.AVX2):
		return TierAVX2
	case cpuid.CPU.Supports(cpuid.SSSE3):
		return TierSSSE3
	case cpuid.CPU.Supports(cpuid.ASIMD):
		return TierNEON
	default:
		return TierScalar
	}
}

// ActiveTier reports which vector backend MulVecByScalar/FMA currently use,
// as selected by runtime CPU feature detection.
func ActiveTier() Tier { return activeTier }

// ForceTier overrides the active tier; it exists for tests and benchmarks
// that need to exercise every backend on a single machine (spec.md §8
// property 4 requires every backend to agree with the scalar one). It
// returns the previous tier so callers can restore it.
func ForceTier(t Tier) Tier {
	prev := activeTier
	activeTier = t
	return prev
}
