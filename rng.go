package rlnc

import "math/rand"

// Source is the entropy supplier spec.md §1 treats as an external
// collaborator, out of scope for this module: it fills a coding vector with
// independent uniform random bytes. It mirrors the Rust crate's
// `rng.fill_bytes(coding_vector)` call (original_source/src/full/encoder.rs).
type Source interface {
	FillBytes(p []byte)
}

// mathRandSource adapts math/rand.Rand to Source. It is not the "random byte
// source" spec.md §1 means as a collaborator to implement for production use
// (callers are expected to bring their own, e.g. crypto/rand or a seeded
// PRNG appropriate to their threat model) — it exists only so tests and
// examples in this module have something concrete to pass.
type mathRandSource struct {
	r *rand.Rand
}

// NewMathRandSource returns a Source backed by a seeded math/rand.Rand, for
// tests and examples.
func NewMathRandSource(seed int64) Source {
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandSource) FillBytes(p []byte) {
	m.r.Read(p) //nolint:errcheck // math/rand.Rand.Read never errors
}
