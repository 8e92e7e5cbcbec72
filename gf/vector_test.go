package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var allTiers = []Tier{TierScalar, TierNEON, TierSSSE3, TierAVX2, TierAVX512, TierGFNI}

// TestVectorBackendsAgree is spec.md §8 property 4: every SIMD backend must
// produce identical results to the scalar backend for MulVecByScalar and FMA
// (AddVectors does not depend on the tier), over lengths spanning
// 0..2*width+1 for the widest tier.
func TestVectorBackendsAgree(t *testing.T) {
	defer ForceTier(ActiveTier())

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 2*64+1).Draw(t, "n")
		s := rapid.Byte().Draw(t, "s")
		src := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "src")

		var scalarMul, scalarFMA []byte
		for _, tier := range allTiers {
			ForceTier(tier)

			mulOut := append([]byte(nil), src...)
			MulVecByScalar(mulOut, s)

			fmaOut := make([]byte, n)
			FMA(fmaOut, src, s)

			if tier == TierScalar {
				scalarMul = mulOut
				scalarFMA = fmaOut
				continue
			}
			assert.Equal(t, scalarMul, mulOut, "tier=%s n=%d s=%d", tier, n, s)
			assert.Equal(t, scalarFMA, fmaOut, "tier=%s n=%d s=%d", tier, n, s)
		}
	})
}

func TestMulVecByScalarShortCircuits(t *testing.T) {
	v := []byte{1, 2, 3, 4}
	MulVecByScalar(v, 1)
	assert.Equal(t, []byte{1, 2, 3, 4}, v)

	MulVecByScalar(v, 0)
	assert.Equal(t, []byte{0, 0, 0, 0}, v)
}

func TestAddVectors(t *testing.T) {
	dst := []byte{0x01, 0x02, 0xFF}
	src := []byte{0x01, 0x00, 0x0F}
	AddVectors(dst, src)
	assert.Equal(t, []byte{0x00, 0x02, 0xF0}, dst)
}

func TestAddVectorsLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		AddVectors([]byte{1, 2}, []byte{1})
	})
}

func TestFMAZeroIsNoop(t *testing.T) {
	dst := []byte{1, 2, 3}
	FMA(dst, []byte{9, 9, 9}, 0)
	assert.Equal(t, []byte{1, 2, 3}, dst)
}

func TestFMAOneDelegatesToAdd(t *testing.T) {
	dst := []byte{1, 2, 3}
	src := []byte{4, 5, 6}
	want := append([]byte(nil), dst...)
	AddVectors(want, src)

	FMA(dst, src, 1)
	assert.Equal(t, want, dst)
}

func TestFMAMatchesMulThenAdd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		s := rapid.Byte().Draw(t, "s")
		src := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "src")
		dst := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "dst")

		got := append([]byte(nil), dst...)
		FMA(got, src, s)

		want := append([]byte(nil), dst...)
		scaled := append([]byte(nil), src...)
		MulVecByScalar(scaled, s)
		AddVectors(want, scaled)

		assert.Equal(t, want, got)
	})
}
