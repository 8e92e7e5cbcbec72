package rlnc

import "github.com/xtaci/rlnc/gf"

// BoundaryMarker is the sentinel byte appended immediately after the
// original payload before zero-padding, used by Decoder.GetDecodedData to
// recover the original payload length (spec.md §3/§6).
const BoundaryMarker = 0x01

// Encoder holds a padded source payload split into pieceCount equal-length
// pieces and emits coded pieces: field-linear combinations of those pieces
// under caller- or RNG-supplied coding vectors (spec.md §4.2).
//
// An Encoder is read-only after construction and is safe for concurrent
// Code/CodeWithBuf calls from multiple goroutines provided each caller owns
// an independent output buffer and Source (spec.md §5).
type Encoder struct {
	padded       []byte
	pieceCount   int
	pieceByteLen int
}

// NewEncoder pads payload with BoundaryMarker then zeros up to a multiple of
// pieceCount, and splits the result into pieceCount equal-length pieces.
func NewEncoder(payload []byte, pieceCount int) (*Encoder, error) {
	if len(payload) == 0 {
		return nil, ErrDataLengthZero
	}
	if pieceCount == 0 {
		return nil, ErrPieceCountZero
	}

	pieceByteLen := ceilDiv(len(payload)+1, pieceCount)
	padded := make([]byte, pieceCount*pieceByteLen)
	copy(padded, payload)
	padded[len(payload)] = BoundaryMarker

	return &Encoder{
		padded:       padded,
		pieceCount:   pieceCount,
		pieceByteLen: pieceByteLen,
	}, nil
}

// newEncoderWithoutPadding builds an Encoder over data that is already an
// exact multiple of pieceCount, writing no boundary marker. It is the only
// constructor Recoder uses: received coded payloads have no padding of their
// own to add (spec.md §4.2/§4.3).
func newEncoderWithoutPadding(data []byte, pieceCount int) (*Encoder, error) {
	if pieceCount == 0 {
		return nil, ErrPieceCountZero
	}
	if len(data)%pieceCount != 0 {
		return nil, ErrDataLengthMismatch
	}
	return &Encoder{
		padded:       data,
		pieceCount:   pieceCount,
		pieceByteLen: len(data) / pieceCount,
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// PieceCount returns the number of source pieces the payload was split into.
func (e *Encoder) PieceCount() int { return e.pieceCount }

// PieceByteLen returns the byte length of a single piece.
func (e *Encoder) PieceByteLen() int { return e.pieceByteLen }

// CodedPieceLen returns the length of a full coded piece,
// PieceCount()+PieceByteLen() (spec.md §3's "Full coded piece").
func (e *Encoder) CodedPieceLen() int { return e.pieceCount + e.pieceByteLen }

// piece returns source piece i as a read-only view into the padded buffer.
func (e *Encoder) piece(i int) []byte {
	return e.padded[i*e.pieceByteLen : (i+1)*e.pieceByteLen]
}

// combine writes Σ_i weights[i]·piece_i into dst, which must have length
// PieceByteLen(). len(weights) must equal PieceCount(); callers within this
// package are trusted to pass a matching length.
func (e *Encoder) combine(weights, dst []byte) {
	clear(dst)
	for i := 0; i < e.pieceCount; i++ {
		gf.FMA(dst, e.piece(i), weights[i])
	}
}

// CodeWithBuf fills out with a full coded piece: out[:PieceCount()] becomes a
// fresh random coding vector sampled from rng, and out[PieceCount():] becomes
// the corresponding linear combination of source pieces. len(out) must equal
// CodedPieceLen().
func (e *Encoder) CodeWithBuf(rng Source, out []byte) error {
	if len(out) != e.CodedPieceLen() {
		return ErrInvalidOutputBuffer
	}

	cv := out[:e.pieceCount]
	payload := out[e.pieceCount:]

	rng.FillBytes(cv)
	e.combine(cv, payload)
	return nil
}

// Code allocates a CodedPieceLen()-byte buffer and delegates to CodeWithBuf.
func (e *Encoder) Code(rng Source) ([]byte, error) {
	out := make([]byte, e.CodedPieceLen())
	if err := e.CodeWithBuf(rng, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CodeVectorWithBuf is like CodeWithBuf but uses a caller-supplied coding
// vector instead of sampling one from a Source — used by Recoder to emit a
// piece under an explicitly composed coding vector (spec.md §4.3), and
// available to callers that want deterministic (e.g. systematic-adjacent)
// coding vectors for testing.
func (e *Encoder) CodeVectorWithBuf(codingVector, out []byte) error {
	if len(codingVector) != e.pieceCount {
		return ErrCodingVectorLengthMismatch
	}
	if len(out) != e.CodedPieceLen() {
		return ErrInvalidOutputBuffer
	}

	cv := out[:e.pieceCount]
	payload := out[e.pieceCount:]

	copy(cv, codingVector)
	e.combine(codingVector, payload)
	return nil
}
