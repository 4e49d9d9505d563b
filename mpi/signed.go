// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the signed layer: sign-aware add/sub/compare/
// multiply built atop the unsigned kernel. The sign rules mirror
// *Int.Add/.Sub/.Cmp/.Mul from the standard math/big package,
// generalized from Go's panic-on-overflow growth to the typed
// KindAlloc failures the storage manager reports.

package mpi

// AddMPI sets z to a+b. If a and b have the same sign, their
// magnitudes add and z inherits that sign; otherwise the smaller
// magnitude is subtracted from the larger and z takes the sign of the
// larger operand (or +1 if the magnitudes are equal, giving zero).
func AddMPI(z, a, b *Int) (err error) {
	defer guardAlloc("add_mpi", &err)
	neg := a.neg
	if a.neg == b.neg {
		z.limbs = z.limbs.add(a.limbs, b.limbs)
	} else {
		if a.limbs.cmp(b.limbs) >= 0 {
			z.limbs = z.limbs.sub(a.limbs, b.limbs)
		} else {
			neg = !neg
			z.limbs = z.limbs.sub(b.limbs, a.limbs)
		}
	}
	z.neg = neg
	z.canon()
	return nil
}

// SubMPI sets z to a-b; defined as AddMPI(z, a, -b) without
// materializing a negated copy of b.
func SubMPI(z, a, b *Int) (err error) {
	defer guardAlloc("sub_mpi", &err)
	neg := a.neg
	if a.neg != b.neg {
		z.limbs = z.limbs.add(a.limbs, b.limbs)
	} else {
		if a.limbs.cmp(b.limbs) >= 0 {
			z.limbs = z.limbs.sub(a.limbs, b.limbs)
		} else {
			neg = !neg
			z.limbs = z.limbs.sub(b.limbs, a.limbs)
		}
	}
	z.neg = neg
	z.canon()
	return nil
}

// scalarInt materializes a one-limb Int for a signed machine scalar,
// never retaining a reference the caller's stack could invalidate —
// trivially true here since Lset copies into freshly-made limb
// storage.
func scalarInt(v int64) *Int {
	s := new(Int)
	s.Lset(v)
	return s
}

// AddInt sets z to a+v for a machine-scalar v.
func AddInt(z, a *Int, v int64) error { return AddMPI(z, a, scalarInt(v)) }

// SubInt sets z to a-v for a machine-scalar v.
func SubInt(z, a *Int, v int64) error { return SubMPI(z, a, scalarInt(v)) }

// CmpMPI compares a and b, returning -1, 0, or +1.
func CmpMPI(a, b *Int) int {
	switch {
	case a.neg == b.neg:
		r := a.limbs.cmp(b.limbs)
		if a.neg {
			r = -r
		}
		return r
	case a.neg:
		return -1
	default:
		return 1
	}
}

// CmpInt compares a against a machine-scalar v.
func CmpInt(a *Int, v int64) int { return CmpMPI(a, scalarInt(v)) }

// MulMPI sets z to a*b using schoolbook O(n*m) multiplication. It
// tolerates z aliasing a or b by accumulating into a scratch magnitude
// first.
func MulMPI(z, a, b *Int) (err error) {
	defer guardAlloc("mul_mpi", &err)
	var scratch nat
	if sameStorage(z.limbs, a.limbs) || sameStorage(z.limbs, b.limbs) {
		scratch = scratch.mulBasic(a.limbs, b.limbs)
		z.limbs = z.limbs.make(len(scratch))
		copy(z.limbs, scratch)
		z.limbs = z.limbs.norm()
	} else {
		z.limbs = z.limbs.mulBasic(a.limbs, b.limbs)
	}
	z.neg = significant(z.limbs) > 0 && a.neg != b.neg
	return nil
}

// sameStorage reports whether x and y share the same backing array,
// the condition multi-operand routines must detect before writing
// in place.
func sameStorage(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[:cap(x)][cap(x)-1] == &y[:cap(y)][cap(y)-1]
}

// mulBasic multiplies x and y via schoolbook long multiplication.
// No Karatsuba or other subquadratic path: plain O(n*m) throughout.
func (z nat) mulBasic(x, y nat) nat {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z.make(0)
	}
	z = z.make(m + n)
	for i := range z {
		z[i] = 0
	}
	for i, yi := range y {
		if yi != 0 {
			z[i+m] = addMulVVW(z[i:i+m], x, yi)
		}
	}
	return z.norm()
}
