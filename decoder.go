package rlnc

import "github.com/xtaci/rlnc/gf"

// Decoder performs online Gaussian elimination over GF(2⁸), maintaining a
// reduced row-echelon form after every successful Decode call so that
// linear dependence is detected cheaply and IsDecoded is O(1) (spec.md
// §4.4, §9).
//
// The matrix is stored as a single flat row-major byte buffer rather than a
// jagged [][]byte: the hot path is a contiguous row-tail FMA during forward
// and backward elimination, and a flat buffer keeps that cache-friendly
// (spec.md §9).
//
// A Decoder is not safe for concurrent use: Decode mutates the matrix in
// place (spec.md §5).
type Decoder struct {
	matrix               []byte // row-major, stride = cols
	pieceByteLen         int    // m
	requiredPieceCount   int    // k
	receivedPieceCount   int
	usefulPieceCount     int // current rank == number of rows in matrix
}

// NewDecoder constructs a Decoder for pieces of pieceByteLen bytes each,
// requiring requiredPieceCount linearly independent pieces to decode.
func NewDecoder(pieceByteLen, requiredPieceCount int) (*Decoder, error) {
	if pieceByteLen == 0 {
		return nil, ErrPieceLengthZero
	}
	if requiredPieceCount == 0 {
		return nil, ErrPieceCountZero
	}
	return &Decoder{
		pieceByteLen:       pieceByteLen,
		requiredPieceCount: requiredPieceCount,
	}, nil
}

// PieceByteLen returns m, the byte length of a single source piece.
func (d *Decoder) PieceByteLen() int { return d.pieceByteLen }

// RequiredPieceCount returns k, the number of linearly independent pieces
// needed to decode.
func (d *Decoder) RequiredPieceCount() int { return d.requiredPieceCount }

// CodedPieceLen returns the expected length of a full coded piece,
// RequiredPieceCount()+PieceByteLen().
func (d *Decoder) CodedPieceLen() int { return d.requiredPieceCount + d.pieceByteLen }

// ReceivedPieceCount returns the total number of pieces passed to Decode so
// far, useful or not.
func (d *Decoder) ReceivedPieceCount() int { return d.receivedPieceCount }

// UsefulPieceCount returns the current rank: the number of linearly
// independent pieces received so far.
func (d *Decoder) UsefulPieceCount() int { return d.usefulPieceCount }

// IsDecoded reports whether enough linearly independent pieces have been
// received to reconstruct the original payload.
func (d *Decoder) IsDecoded() bool { return d.usefulPieceCount == d.requiredPieceCount }

func (d *Decoder) cols() int { return d.requiredPieceCount + d.pieceByteLen }

func (d *Decoder) row(i int) []byte {
	cols := d.cols()
	return d.matrix[i*cols : (i+1)*cols]
}

func (d *Decoder) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := d.row(a), d.row(b)
	cols := d.cols()
	for c := 0; c < cols; c++ {
		ra[c], rb[c] = rb[c], ra[c]
	}
}

// Decode appends fullPiece as a new row and re-establishes RREF over all
// currently present rows. It fails with ErrReceivedAllPieces if rank already
// equals RequiredPieceCount, ErrInvalidPieceLength if the length mismatches,
// and ErrPieceNotUseful if rank did not increase (the dependent row has
// already been removed, restoring UsefulPieceCount to its prior value).
func (d *Decoder) Decode(fullPiece []byte) error {
	if d.IsDecoded() {
		return ErrReceivedAllPieces
	}
	if len(fullPiece) != d.CodedPieceLen() {
		return ErrInvalidPieceLength
	}

	rankBefore := d.usefulPieceCount

	d.matrix = append(d.matrix, fullPiece...)
	d.receivedPieceCount++
	d.usefulPieceCount++
	d.rref()

	if d.usefulPieceCount == rankBefore {
		return ErrPieceNotUseful
	}
	return nil
}

// rref performs forward elimination, backward elimination, and zero-row
// compaction over the currently present rows, grounded on
// original_source/src/full/decoder.rs's clean_forward/clean_backward/
// remove_zero_rows.
func (d *Decoder) rref() {
	d.cleanForward()
	d.cleanBackward()
	d.removeZeroRows()
}

func (d *Decoder) cleanForward() {
	rows := d.usefulPieceCount
	cols := d.cols()
	boundary := min(rows, cols)

	for i := 0; i < boundary; i++ {
		if d.row(i)[i] == 0 {
			pivot := -1
			for r := i + 1; r < rows; r++ {
				if d.row(r)[i] != 0 {
					pivot = r
					break
				}
			}
			if pivot == -1 {
				continue
			}
			d.swapRows(i, pivot)
		}

		pivotVal := d.row(i)[i]
		for j := i + 1; j < rows; j++ {
			rowJ := d.row(j)
			if rowJ[i] == 0 {
				continue
			}
			inv, err := gf.Inv(pivotVal)
			if err != nil {
				panic("rlnc: decoder pivot is zero after swap, invariant violated")
			}
			q := gf.Mul(rowJ[i], inv)
			gf.FMA(rowJ[i:cols], d.row(i)[i:cols], q)
		}
	}
}

func (d *Decoder) cleanBackward() {
	rows := d.usefulPieceCount
	cols := d.cols()
	boundary := min(rows, cols)

	for i := boundary - 1; i >= 0; i-- {
		pivotVal := d.row(i)[i]
		if pivotVal == 0 {
			continue
		}

		for j := 0; j < i; j++ {
			rowJ := d.row(j)
			if rowJ[i] == 0 {
				continue
			}
			inv, err := gf.Inv(pivotVal)
			if err != nil {
				panic("rlnc: decoder pivot is zero, invariant violated")
			}
			q := gf.Mul(rowJ[i], inv)
			gf.FMA(rowJ[i:cols], d.row(i)[i:cols], q)
		}

		if pivotVal == 1 {
			continue
		}
		inv, err := gf.Inv(pivotVal)
		if err != nil {
			panic("rlnc: decoder pivot is zero, invariant violated")
		}
		rowI := d.row(i)
		rowI[i] = 1
		gf.MulVecByScalar(rowI[i+1:cols], inv)
	}
}

// removeZeroRows deletes every row whose leading RequiredPieceCount()
// columns are all zero, compacting the buffer and updating UsefulPieceCount
// to the post-compaction row count. This is what enforces the "row count ==
// rank" invariant (spec.md §4.4).
func (d *Decoder) removeZeroRows() {
	rows := d.usefulPieceCount
	cols := d.cols()
	coeffCols := d.requiredPieceCount

	write := 0
	for read := 0; read < rows; read++ {
		r := d.matrix[read*cols : (read+1)*cols]
		nonZero := false
		for c := 0; c < coeffCols; c++ {
			if r[c] != 0 {
				nonZero = true
				break
			}
		}
		if !nonZero {
			continue
		}
		if write != read {
			copy(d.matrix[write*cols:(write+1)*cols], r)
		}
		write++
	}

	d.usefulPieceCount = write
	d.matrix = d.matrix[:write*cols]
}

// GetDecodedData returns the reconstructed original payload in a newly
// allocated buffer; the Decoder itself is left unchanged. It fails with
// ErrNotAllPiecesReceivedYet if rank is below RequiredPieceCount, and
// ErrInvalidDecodedDataFormat if the boundary marker is missing, at offset
// zero, or followed by a nonzero byte.
//
// The payload is truncated at the last BoundaryMarker byte. NewEncoder
// writes the marker directly after the final payload byte and only zeros
// after it, so the last marker is always the one NewEncoder wrote: a payload
// that itself ends in BoundaryMarker followed by zero bytes is recovered in
// full.
func (d *Decoder) GetDecodedData() ([]byte, error) {
	if !d.IsDecoded() {
		return nil, ErrNotAllPiecesReceivedYet
	}

	k := d.requiredPieceCount
	cols := d.cols()
	decoded := make([]byte, 0, k*d.pieceByteLen)
	for i := 0; i < k; i++ {
		row := d.matrix[i*cols : (i+1)*cols]
		decoded = append(decoded, row[k:]...)
	}

	lastIndex := len(decoded) - 1
	markerIndex := -1
	for i := lastIndex; i >= 0; i-- {
		if decoded[i] == BoundaryMarker {
			markerIndex = i
			break
		}
	}
	if markerIndex <= 0 {
		return nil, ErrInvalidDecodedDataFormat
	}
	for _, b := range decoded[markerIndex+1:] {
		if b != 0 {
			return nil, ErrInvalidDecodedDataFormat
		}
	}

	return decoded[:markerIndex], nil
}
