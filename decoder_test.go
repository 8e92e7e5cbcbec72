package rlnc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewDecoderRejectsZeroPieceByteLen(t *testing.T) {
	_, err := NewDecoder(0, 4)
	assert.ErrorIs(t, err, ErrPieceLengthZero)
}

func TestNewDecoderRejectsZeroPieceCount(t *testing.T) {
	_, err := NewDecoder(4, 0)
	assert.ErrorIs(t, err, ErrPieceCountZero)
}

func TestDecodeAfterFullRankFails(t *testing.T) {
	enc, err := NewEncoder([]byte{1, 2, 3}, 2)
	require.NoError(t, err)
	dec, err := NewDecoder(enc.PieceByteLen(), 2)
	require.NoError(t, err)

	rng := NewMathRandSource(5)
	for !dec.IsDecoded() {
		piece, err := enc.Code(rng)
		require.NoError(t, err)
		_ = dec.Decode(piece)
	}

	piece, err := enc.Code(rng)
	require.NoError(t, err)
	assert.ErrorIs(t, dec.Decode(piece), ErrReceivedAllPieces)
}

func TestGetDecodedDataBeforeFullRank(t *testing.T) {
	dec, err := NewDecoder(4, 4)
	require.NoError(t, err)
	_, err = dec.GetDecodedData()
	assert.ErrorIs(t, err, ErrNotAllPiecesReceivedYet)
}

// TestDecoderMatrixIsRREF is spec.md §8 property 5: after every successful
// decode the leading RequiredPieceCount() columns must form the identity
// matrix once rank == k, and UsefulPieceCount() must equal the row count at
// every step along the way.
func TestDecoderMatrixIsRREF(t *testing.T) {
	rng := NewMathRandSource(99)
	payload := make([]byte, 777)
	rng.FillBytes(payload)

	k := 9
	enc, err := NewEncoder(payload, k)
	require.NoError(t, err)
	dec, err := NewDecoder(enc.PieceByteLen(), k)
	require.NoError(t, err)

	for !dec.IsDecoded() {
		piece, err := enc.Code(rng)
		require.NoError(t, err)
		if dec.Decode(piece) == nil {
			assert.Equal(t, dec.usefulPieceCount, len(dec.matrix)/dec.cols())
		}
	}

	cols := dec.cols()
	for i := 0; i < k; i++ {
		row := dec.matrix[i*cols : (i+1)*cols]
		for c := 0; c < k; c++ {
			want := byte(0)
			if c == i {
				want = 1
			}
			assert.Equal(t, want, row[c], "row=%d col=%d", i, c)
		}
	}
}

// TestEncodeDecodeRoundTripProperty is spec.md §8 property 3: for all
// payloads P and piece_count k, a non-degenerate RNG eventually reconstructs
// P exactly from a stream of coded pieces.
func TestEncodeDecodeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 1, 200).Draw(t, "payload")
		k := rapid.IntRange(1, 12).Draw(t, "k")

		enc, err := NewEncoder(payload, k)
		require.NoError(t, err)
		dec, err := NewDecoder(enc.PieceByteLen(), k)
		require.NoError(t, err)

		rng := NewMathRandSource(int64(len(payload)*31 + k))
		// epsilon bound: at most k+16 attempts beyond the minimum k needed,
		// generously covering rare linearly-dependent samples.
		maxAttempts := k*2 + 16
		for attempt := 0; !dec.IsDecoded(); attempt++ {
			if attempt >= maxAttempts {
				t.Fatalf("did not converge within %d attempts for k=%d", maxAttempts, k)
			}
			piece, err := enc.Code(rng)
			require.NoError(t, err)
			_ = dec.Decode(piece)
		}

		got, err := dec.GetDecodedData()
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})
}
