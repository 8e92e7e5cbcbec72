package rlnc

import "github.com/pkg/errors"

// Sentinel errors, one per row of spec.md §7's error taxonomy, declared with
// github.com/pkg/errors. Call sites in this package return the sentinels
// unwrapped, so callers can match them with errors.Is (or errors.Cause).
var (
	// ErrDataLengthZero is returned by NewEncoder for an empty payload.
	ErrDataLengthZero = errors.New("rlnc: payload is empty")

	// ErrPieceCountZero is returned when a piece count of zero is given to
	// an Encoder, Decoder, or Recoder constructor.
	ErrPieceCountZero = errors.New("rlnc: piece count is zero")

	// ErrPieceLengthZero is returned by NewRecoder when fullLen is zero.
	ErrPieceLengthZero = errors.New("rlnc: piece length is zero")

	// ErrDataLengthMismatch is returned by newEncoderWithoutPadding when the
	// payload length is not an exact multiple of the piece count.
	ErrDataLengthMismatch = errors.New("rlnc: data length is not a multiple of piece count")

	// ErrCodingVectorLengthMismatch is returned when a caller-supplied
	// coding vector's length does not equal the piece count.
	ErrCodingVectorLengthMismatch = errors.New("rlnc: coding vector length mismatch")

	// ErrInvalidOutputBuffer is returned when an output buffer's length
	// does not equal the required full/coded piece length.
	ErrInvalidOutputBuffer = errors.New("rlnc: invalid output buffer length")

	// ErrPieceNotUseful is returned by Decoder.Decode when the piece is a
	// linear combination of previously received useful pieces.
	ErrPieceNotUseful = errors.New("rlnc: piece is linearly dependent on pieces already received")

	// ErrReceivedAllPieces is returned by Decoder.Decode once rank already
	// equals the required piece count.
	ErrReceivedAllPieces = errors.New("rlnc: decoder has already reached full rank")

	// ErrInvalidPieceLength is returned by Decoder.Decode when the supplied
	// piece's length does not equal the full coded piece length.
	ErrInvalidPieceLength = errors.New("rlnc: invalid piece length")

	// ErrNotAllPiecesReceivedYet is returned by Decoder.GetDecodedData
	// before rank reaches the required piece count.
	ErrNotAllPiecesReceivedYet = errors.New("rlnc: not enough pieces received yet")

	// ErrInvalidDecodedDataFormat is returned by Decoder.GetDecodedData when
	// the boundary marker is missing, at offset zero, or followed by a
	// nonzero byte.
	ErrInvalidDecodedDataFormat = errors.New("rlnc: decoded data has an invalid boundary marker")

	// ErrNotEnoughPiecesToRecode is returned by NewRecoder when given no
	// received pieces.
	ErrNotEnoughPiecesToRecode = errors.New("rlnc: no received pieces to recode from")

	// ErrPieceLengthTooShort is returned by NewRecoder when fullLen <= k.
	ErrPieceLengthTooShort = errors.New("rlnc: piece length is not greater than piece count")
)
