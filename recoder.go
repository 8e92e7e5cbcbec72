package rlnc

import "github.com/xtaci/rlnc/gf"

// Recoder produces fresh coded pieces from a batch of received coded pieces
// without first decoding them (spec.md §4.3). It stores the n received
// coding vectors as an n×k matrix and the n received coded payloads as an
// inner Encoder whose "pieces" are those payloads.
//
// A Recoder is not safe for concurrent use: every call mutates its scratch
// sampling buffer (spec.md §5).
type Recoder struct {
	pieceCount     int // k, the original Encoder's piece count
	pieceByteLen   int // m = fullLen - k
	receivedCount  int // n
	codingVectors  []byte // n*k bytes, row-major: codingVectors[i*k:(i+1)*k]
	inner          *Encoder
	scratch        []byte // length n, reused across RecodeWithBuf calls
}

// NewRecoder splits receivedBytes into n = len(receivedBytes)/fullLen
// received full coded pieces (trailing bytes shorter than fullLen are
// discarded), each split into a length-pieceCount coding vector and a
// length-(fullLen-pieceCount) payload.
func NewRecoder(receivedBytes []byte, fullLen, pieceCount int) (*Recoder, error) {
	if len(receivedBytes) == 0 {
		return nil, ErrNotEnoughPiecesToRecode
	}
	if fullLen == 0 {
		return nil, ErrPieceLengthZero
	}
	if pieceCount == 0 {
		return nil, ErrPieceCountZero
	}
	if fullLen <= pieceCount {
		return nil, ErrPieceLengthTooShort
	}

	k := pieceCount
	m := fullLen - k
	n := len(receivedBytes) / fullLen

	codingVectors := make([]byte, n*k)
	payloads := make([]byte, n*m)
	for i := 0; i < n; i++ {
		row := receivedBytes[i*fullLen : (i+1)*fullLen]
		copy(codingVectors[i*k:(i+1)*k], row[:k])
		copy(payloads[i*m:(i+1)*m], row[k:])
	}

	inner, err := newEncoderWithoutPadding(payloads, n)
	if err != nil {
		return nil, err
	}

	return &Recoder{
		pieceCount:    k,
		pieceByteLen:  m,
		receivedCount: n,
		codingVectors: codingVectors,
		inner:         inner,
		scratch:       make([]byte, n),
	}, nil
}

// PieceCount returns k, the original Encoder's piece count.
func (r *Recoder) PieceCount() int { return r.pieceCount }

// PieceByteLen returns m, the coded payload length.
func (r *Recoder) PieceByteLen() int { return r.pieceByteLen }

// CodedPieceLen returns the length of a full coded piece this Recoder emits,
// identical in shape to the pieces it was built from.
func (r *Recoder) CodedPieceLen() int { return r.pieceCount + r.pieceByteLen }

// ReceivedPieceCount returns n, the number of received pieces this Recoder
// recodes from.
func (r *Recoder) ReceivedPieceCount() int { return r.receivedCount }

func (r *Recoder) vectorRow(i int) []byte {
	return r.codingVectors[i*r.pieceCount : (i+1)*r.pieceCount]
}

// RecodeWithBuf fills out with a new full coded piece over the original k
// source pieces. It samples a random length-n mixing vector r, computes
// cv_out = r·V (V the n×k matrix of received coding vectors), and sets
// payload_out to the same linear combination of the received payloads.
// Because Σ_i r_i·(V_i·P) == (r·V)·P, the result is a valid coded piece with
// coefficient vector cv_out over the original source pieces (spec.md §4.3).
func (r *Recoder) RecodeWithBuf(rng Source, out []byte) error {
	if len(out) != r.CodedPieceLen() {
		return ErrInvalidOutputBuffer
	}

	cvOut := out[:r.pieceCount]
	payloadOut := out[r.pieceCount:]

	mix := r.scratch
	rng.FillBytes(mix)

	clear(cvOut)
	for i := 0; i < r.receivedCount; i++ {
		gf.FMA(cvOut, r.vectorRow(i), mix[i])
	}

	r.inner.combine(mix, payloadOut)
	return nil
}

// Recode allocates a CodedPieceLen()-byte buffer and delegates to
// RecodeWithBuf.
func (r *Recoder) Recode(rng Source) ([]byte, error) {
	out := make([]byte, r.CodedPieceLen())
	if err := r.RecodeWithBuf(rng, out); err != nil {
		return nil, err
	}
	return out, nil
}
