// Package rng supplies the random-byte callbacks the mpi package's
// number-theory and codec routines take as an RNG argument: fill a
// buffer, propagate failure verbatim. It offers a crypto/rand-backed
// source for production use and a seeded math/rand-backed source for
// reproducible tests, using a callback-closure style rather than a
// stateful interface type.
package rng

import (
	"crypto/rand"
	mrand "math/rand"
)

// Crypto fills buf with cryptographically secure random bytes and
// returns crypto/rand.Read's error unchanged, which is non-nil only
// when the OS entropy source fails.
func Crypto(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// Deterministic returns an RNG callback seeded with seed, suitable for
// reproducible tests that exercise IsPrime/GenPrime without pulling on
// the system entropy pool. It is not safe for concurrent use.
func Deterministic(seed int64) func(buf []byte) error {
	src := mrand.New(mrand.NewSource(seed))
	return func(buf []byte) error {
		_, err := src.Read(buf)
		return err
	}
}
