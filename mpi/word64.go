// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !limb32

// This file selects the 64-bit limb width. Build with -tags limb32 to
// select the 32-bit width instead; both widths must produce identical
// numerical results (see word32.go).

package mpi

import "math/bits"

// Word is one limb of a magnitude, W bits wide.
type Word uint64

const (
	_W = 64       // limb width in bits
	_S = _W / 8   // limb width in bytes
	_M = Word(1<<_W - 1) // all bits set
)

// addWW returns the sum x+y+carry and the carry out, carry in {0,1}.
func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add64(uint64(x), uint64(y), uint64(carry))
	return Word(s), Word(c)
}

// subWW returns the difference x-y-borrow and the borrow out, borrow in {0,1}.
func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub64(uint64(x), uint64(y), uint64(borrow))
	return Word(d), Word(b)
}

// mulWW returns the 2-limb product x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	return Word(h), Word(l)
}

// divWW returns (hi:lo) / y as (quo, rem). It panics if y == 0 or if
// the quotient does not fit in a Word; callers are responsible for
// normalizing the divisor first (see div.go).
func divWW(hi, lo, y Word) (quo, rem Word) {
	q, r := bits.Div64(uint64(hi), uint64(lo), uint64(y))
	return Word(q), Word(r)
}

// nlz returns the number of leading zero bits of x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros64(uint64(x)))
}

// ntz returns the number of trailing zero bits of x; ntz(0) == _W.
func ntz(x Word) uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}

// bitLenWord returns the number of bits required to represent x; bitLenWord(0) == 0.
func bitLenWord(x Word) int {
	return bits.Len64(uint64(x))
}
