// Package randstr generates random letter sequences from a fixed alphabet.
//
// Every variant draws each character independently and uniformly from the
// same 52-letter alphabet; they differ only in how the result is built,
// which is what the benchmarks in this repository measure.
package randstr

import (
	"math/rand"
	"strings"
)

// Alphabet is the fixed set of permissible output characters:
// lower-case then upper-case Latin letters, 52 in total.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator produces random letter sequences from Alphabet.
//
// The random source is an explicit dependency: callers construct a
// Generator from a rand.Source of their choosing, so tests can use a
// fixed seed and concurrent callers can hold independent instances.
// A Generator is NOT safe for concurrent use; give each goroutine its own.
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator backed by the given source.
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewSeeded creates a Generator with a deterministic seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.NewSource(seed))
}

// Bytes returns n random letters as a byte slice.
//
// This is the primitive all other variants build on: one allocation for
// the result, one uniform pick per element. n <= 0 returns an empty
// (non-nil) slice.
func (g *Generator) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = Alphabet[g.rnd.Intn(len(Alphabet))]
	}
	return b
}

// AppendBytes appends n random letters to dst and returns the extended
// slice. With sufficient capacity in dst this performs no allocation.
func (g *Generator) AppendBytes(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, Alphabet[g.rnd.Intn(len(Alphabet))])
	}
	return dst
}

// String returns n random letters as a string.
//
// Costs one allocation beyond Bytes for the string conversion.
func (g *Generator) String(n int) string {
	return string(g.Bytes(n))
}

// BuilderString returns n random letters as a string built with a
// pre-grown strings.Builder, avoiding the Bytes-then-convert copy.
func (g *Generator) BuilderString(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(Alphabet[g.rnd.Intn(len(Alphabet))])
	}
	return sb.String()
}

// ConcatString returns n random letters as a string built by repeated
// concatenation. Quadratic allocation behavior; it exists as the
// baseline the other variants are measured against.
func (g *Generator) ConcatString(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += string(Alphabet[g.rnd.Intn(len(Alphabet))])
	}
	return s
}
