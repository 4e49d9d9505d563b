// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements schoolbook long division: Knuth's Algorithm D,
// normalizing the divisor so its top bit is set, estimating each
// quotient digit from the top two limbs, and correcting with an
// add-back step. Division failures (a zero divisor) return a typed
// error instead of panicking.

package mpi

// divW divides x by a single limb y, returning quotient and remainder.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	x = x.norm()
	m := len(x)
	if m == 0 {
		return z.make(0), 0
	}
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	return z.norm(), r
}

// div divides uIn by v, returning (quotient, remainder). z2 receives
// the remainder storage. Precondition: len(v) (normalized) > 0.
func (z nat) div(z2, uIn, v nat) (q, r nat) {
	v = v.norm()
	uIn = uIn.norm()
	if uIn.cmp(v) < 0 {
		return z.make(0), z2.set(uIn)
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(uIn, v[0])
		r = z2.setWord(r2)
		return q, r
	}
	return z.divLarge(z2, uIn, v)
}

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2).
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}

// divLarge implements Knuth, Volume 2, §4.3.1, Algorithm D. len(v) must
// be >= 2 and len(uIn) >= len(v).
func (z nat) divLarge(u, uIn, v nat) (q, r nat) {
	n := len(v)
	m := len(uIn) - n

	q = z.make(m + 1)

	qhatv := make(nat, n+1)

	u = u.make(len(uIn) + 1)
	for i := range u {
		u[i] = 0
	}

	// D1: normalize so the divisor's top limb has its high bit set.
	shift := nlz(v[n-1])
	var v1 nat
	if shift > 0 {
		v1 = make(nat, n)
		shlVU(v1, v, shift)
		v = v1
	}
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	// D2/D3/D4/D5/D6/D7: process one quotient digit per iteration.
	vn1 := v[n-1]
	for j := m; j >= 0; j-- {
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			vn2 := v[n-2]
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat { // rhat overflowed: qhat is now certainly small enough
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			// D6: add back.
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	q = q.norm()
	shrVU(u, u, shift)
	r = u.norm()
	return q, r
}

// ---- Int-level division ----

// DivMPI sets q and r to the quotient and remainder of a/b (Knuth
// Algorithm D), satisfying a = q*b + r with |r| < |b|. Either q or r
// may be nil; both are computed internally regardless. q carries the
// sign of a*b (zero canonicalized), r carries the sign of a. Fails
// with KindDivisionByZero if b == 0.
func DivMPI(q, r, a, b *Int) (err error) {
	defer guardAlloc("div_mpi", &err)
	if IsZero(b) {
		return newErr("div_mpi", KindDivisionByZero, "divisor is zero")
	}
	var qq, rr nat
	qq, rr = qq.div(rr, a.limbs, b.limbs)

	qNeg := significant(qq) > 0 && a.neg != b.neg
	rNeg := significant(rr) > 0 && a.neg

	if q != nil {
		q.limbs = q.limbs.set(qq)
		q.neg = qNeg
	}
	if r != nil {
		r.limbs = r.limbs.set(rr)
		r.neg = rNeg
	}
	return nil
}

// DivInt wraps DivMPI with a single-limb (machine scalar) divisor.
func DivInt(q, r, a *Int, b int64) error {
	return DivMPI(q, r, a, scalarInt(b))
}

// ModMPI sets r to a mod b and returns only the remainder, requiring
// b > 0 (fails with KindNegativeValue otherwise), and guarantees
// r in [0, b).
func ModMPI(r, a, b *Int) (err error) {
	defer guardAlloc("mod_mpi", &err)
	if b.neg || IsZero(b) {
		return newErr("mod_mpi", KindNegativeValue, "modulus must be positive")
	}
	var tmpR Int
	if e := DivMPI(nil, &tmpR, a, b); e != nil {
		return e
	}
	if tmpR.neg {
		if e := AddMPI(&tmpR, &tmpR, b); e != nil {
			return e
		}
	}
	r.limbs = r.limbs.set(tmpR.limbs)
	r.neg = false
	r.canon()
	return nil
}
