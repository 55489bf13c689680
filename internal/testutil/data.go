// Package testutil provides shared data generators for exercising pools in
// tests and benchmarks.
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
)

// Unit mirrors the code unit constraint of the root package. It is declared
// here as well so helpers stay importable from in-package tests without an
// import cycle.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// RandomUnits returns n code units drawn from rng across the full value
// range, zeros included. Stored strings carry explicit lengths, so embedded
// zeros must survive pooling and tests should feed them in.
func RandomUnits[T Unit](rng *rand.Rand, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(rng.Uint64())
	}
	return s
}

// RandomASCII returns n printable ASCII units.
func RandomASCII[T Unit](rng *rand.Rand, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(' ' + rng.Intn('~'-' '+1))
	}
	return s
}

// Words returns n faker-generated words. The vocabulary is small, so the
// result repeats itself heavily, which matches what interning workloads see.
func Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		w := struct {
			Word string `faker:"word"`
		}{}
		if err := faker.FakeData(&w); err != nil {
			out[i] = fmt.Sprintf("word%d", i%97)
			continue
		}
		out[i] = w.Word
	}
	return out
}

// Sentences returns n faker-generated sentences with few duplicates.
func Sentences(n int) []string {
	out := make([]string, n)
	for i := range out {
		s := struct {
			Sentence string `faker:"sentence"`
		}{}
		if err := faker.FakeData(&s); err != nil {
			out[i] = fmt.Sprintf("fallback sentence %d", i)
			continue
		}
		out[i] = s.Sentence
	}
	return out
}
