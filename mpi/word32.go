// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build limb32

// This file selects the 32-bit limb width (build with -tags limb32).
// See word64.go for the default 64-bit width; every algorithm above
// this file must produce identical results regardless of which of the
// two is active.

package mpi

import "math/bits"

// Word is one limb of a magnitude, W bits wide.
type Word uint32

const (
	_W = 32               // limb width in bits
	_S = _W / 8           // limb width in bytes
	_M = Word(1<<_W - 1)  // all bits set
)

func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add32(uint32(x), uint32(y), uint32(carry))
	return Word(s), Word(c)
}

func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub32(uint32(x), uint32(y), uint32(borrow))
	return Word(d), Word(b)
}

func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	return Word(h), Word(l)
}

func divWW(hi, lo, y Word) (quo, rem Word) {
	q, r := bits.Div32(uint32(hi), uint32(lo), uint32(y))
	return Word(q), Word(r)
}

func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

func ntz(x Word) uint {
	return uint(bits.TrailingZeros32(uint32(x)))
}

func bitLenWord(x Word) int {
	return bits.Len32(uint32(x))
}
