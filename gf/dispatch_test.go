package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceTierRestoresPrevious(t *testing.T) {
	orig := ActiveTier()
	prev := ForceTier(TierGFNI)
	assert.Equal(t, orig, prev)
	assert.Equal(t, TierGFNI, ActiveTier())
	ForceTier(prev)
	assert.Equal(t, orig, ActiveTier())
}

func TestTierChunkSizesMatchInstructionWidths(t *testing.T) {
	assert.Equal(t, 1, TierScalar.chunkSize())
	assert.Equal(t, 16, TierSSSE3.chunkSize())
	assert.Equal(t, 16, TierNEON.chunkSize())
	assert.Equal(t, 32, TierAVX2.chunkSize())
	assert.Equal(t, 64, TierAVX512.chunkSize())
	assert.Equal(t, 64, TierGFNI.chunkSize())
}

func TestTierStringer(t *testing.T) {
	assert.Equal(t, "scalar", TierScalar.String())
	assert.Equal(t, "gfni", TierGFNI.String())
}
