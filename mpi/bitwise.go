// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bitwise And/Or/Xor/AndNot/Not on signed values,
// emulating two's-complement semantics over the sign+magnitude
// representation: a negative operand x is treated as ^(|x|-1), so e.g.
// x&y for two negatives becomes -(((x-1)|(y-1))+1) computed entirely
// in magnitude arithmetic.

package mpi

func (z nat) and(x, y nat) nat {
	m := len(x)
	if len(y) < m {
		m = len(y)
	}
	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (z nat) andNot(x, y nat) nat {
	m := len(x)
	z = z.make(m)
	n := len(y)
	if n > m {
		n = m
	}
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

// And sets z = a & b under two's-complement emulation.
func And(z, a, b *Int) (err error) {
	defer guardAlloc("and", &err)
	if a.neg == b.neg {
		if a.neg {
			x1 := nat(nil).sub(a.limbs, natOne)
			y1 := nat(nil).sub(b.limbs, natOne)
			z.limbs = z.limbs.add(z.limbs.or(x1, y1), natOne)
			z.neg = true
			return nil
		}
		z.limbs = z.limbs.and(a.limbs, b.limbs)
		z.neg = false
		z.canon()
		return nil
	}
	x, y := a, b
	if x.neg {
		x, y = y, x
	}
	y1 := nat(nil).sub(y.limbs, natOne)
	z.limbs = z.limbs.andNot(x.limbs, y1)
	z.neg = false
	z.canon()
	return nil
}

// AndNot sets z = a &^ b under two's-complement emulation.
func AndNot(z, a, b *Int) (err error) {
	defer guardAlloc("and_not", &err)
	if a.neg == b.neg {
		if a.neg {
			x1 := nat(nil).sub(a.limbs, natOne)
			y1 := nat(nil).sub(b.limbs, natOne)
			z.limbs = z.limbs.andNot(y1, x1)
			z.neg = false
			z.canon()
			return nil
		}
		z.limbs = z.limbs.andNot(a.limbs, b.limbs)
		z.neg = false
		z.canon()
		return nil
	}
	if a.neg {
		x1 := nat(nil).sub(a.limbs, natOne)
		z.limbs = z.limbs.add(z.limbs.or(x1, b.limbs), natOne)
		z.neg = true
		return nil
	}
	y1 := nat(nil).sub(b.limbs, natOne)
	z.limbs = z.limbs.and(a.limbs, y1)
	z.neg = false
	z.canon()
	return nil
}

// Or sets z = a | b under two's-complement emulation.
func Or(z, a, b *Int) (err error) {
	defer guardAlloc("or", &err)
	if a.neg == b.neg {
		if a.neg {
			x1 := nat(nil).sub(a.limbs, natOne)
			y1 := nat(nil).sub(b.limbs, natOne)
			z.limbs = z.limbs.add(z.limbs.and(x1, y1), natOne)
			z.neg = true
			return nil
		}
		z.limbs = z.limbs.or(a.limbs, b.limbs)
		z.neg = false
		z.canon()
		return nil
	}
	x, y := a, b
	if x.neg {
		x, y = y, x
	}
	y1 := nat(nil).sub(y.limbs, natOne)
	z.limbs = z.limbs.add(z.limbs.andNot(y1, x.limbs), natOne)
	z.neg = true
	return nil
}

// Xor sets z = a ^ b under two's-complement emulation.
func Xor(z, a, b *Int) (err error) {
	defer guardAlloc("xor", &err)
	if a.neg == b.neg {
		if a.neg {
			x1 := nat(nil).sub(a.limbs, natOne)
			y1 := nat(nil).sub(b.limbs, natOne)
			z.limbs = z.limbs.xor(x1, y1)
			z.neg = false
			z.canon()
			return nil
		}
		z.limbs = z.limbs.xor(a.limbs, b.limbs)
		z.neg = false
		z.canon()
		return nil
	}
	x, y := a, b
	if x.neg {
		x, y = y, x
	}
	y1 := nat(nil).sub(y.limbs, natOne)
	z.limbs = z.limbs.add(z.limbs.xor(x.limbs, y1), natOne)
	z.neg = true
	return nil
}

// Not sets z = ^a (equivalently -(a+1)) under two's-complement emulation.
func Not(z, a *Int) (err error) {
	defer guardAlloc("not", &err)
	if a.neg {
		z.limbs = z.limbs.sub(a.limbs, natOne)
		z.neg = false
		z.canon()
		return nil
	}
	z.limbs = z.limbs.add(a.limbs, natOne)
	z.neg = true
	return nil
}
