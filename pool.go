package rlnc

import (
	"runtime"
	"sync"

	"github.com/xtaci/rlnc/gf"
)

// CodeWithBufParallel is the data-parallel encode variant of spec.md §4.2:
// it partitions the PieceCount() linear-combination terms across worker
// goroutines, each accumulating into a private PieceByteLen()-length buffer,
// then XOR-reduces the partial sums into the final payload. XOR is both
// associative and commutative, so any reduction order is correct.
//
// The split is grounded on reedsolomon.go's codeSomeShardsP: one goroutine
// per up-to-runtime.GOMAXPROCS(0) worker, each owning a contiguous range of
// terms, joined with a sync.WaitGroup. The caller never observes suspension:
// CodeWithBufParallel returns only once every worker's reduction has landed.
func (e *Encoder) CodeWithBufParallel(rng Source, out []byte) error {
	if len(out) != e.CodedPieceLen() {
		return ErrInvalidOutputBuffer
	}

	cv := out[:e.pieceCount]
	payload := out[e.pieceCount:]
	rng.FillBytes(cv)
	clear(payload)

	workers := runtime.GOMAXPROCS(0)
	if workers > e.pieceCount {
		workers = e.pieceCount
	}
	if workers <= 1 {
		for i := 0; i < e.pieceCount; i++ {
			gf.FMA(payload, e.piece(i), cv[i])
		}
		return nil
	}

	partials := make([][]byte, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	termsPerWorker := ceilDiv(e.pieceCount, workers)
	for w := 0; w < workers; w++ {
		start := w * termsPerWorker
		end := start + termsPerWorker
		if end > e.pieceCount {
			end = e.pieceCount
		}
		go func(w, start, end int) {
			defer wg.Done()
			if start >= end {
				return
			}
			acc := make([]byte, e.pieceByteLen)
			for i := start; i < end; i++ {
				gf.FMA(acc, e.piece(i), cv[i])
			}
			partials[w] = acc
		}(w, start, end)
	}
	wg.Wait()

	for _, acc := range partials {
		if acc != nil {
			gf.AddVectors(payload, acc)
		}
	}
	return nil
}
