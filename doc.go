// Package rlnc implements Random Linear Network Coding over GF(2⁸): an
// Encoder splits a payload into fixed-size pieces and emits an unbounded
// stream of random linear combinations of them, a Recoder produces fresh
// coded pieces from a batch of received ones without decoding them, and a
// Decoder reconstructs the original payload via online Gaussian elimination
// as soon as enough linearly independent pieces have arrived.
//
// The field arithmetic and its SIMD-tiered vector kernels live in the gf
// subpackage; this package is the coding/recoding/decoding engine built on
// top of it.
package rlnc
