// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements sliding-window modular exponentiation on top of
// the Montgomery core: precompute odd powers in Montgomery form, scan
// the exponent MSB-first, square-and-multiply, using a bit-length-dependent
// variable window (w in [1,6]) and a caller-owned RRCache so R² is not
// recomputed on every call against the same modulus.

package mpi

// WindowCap bounds the sliding window width ExpMod may choose.
// Valid range is [1,6]; values outside that range are clamped.
var WindowCap = 6

// windowWidth picks w from the bit length of the exponent, mirroring
// the classic small-exponent-gets-a-small-window schedule (more
// precomputed odd powers only pay off once the exponent is long
// enough to amortize them across many multiplies).
func windowWidth(ebits int) uint {
	cap := WindowCap
	if cap < 1 {
		cap = 1
	}
	if cap > 6 {
		cap = 6
	}
	var w uint
	switch {
	case ebits < 7:
		w = 1
	case ebits < 36:
		w = 3
	case ebits < 140:
		w = 4
	case ebits < 450:
		w = 5
	default:
		w = 6
	}
	if w > uint(cap) {
		w = uint(cap)
	}
	return w
}

// ExpMod sets x = a^e mod n. n must be > 1 and odd; e must be >= 0.
// rr, if non-nil, caches R² mod n across calls against the same
// modulus; the caller must Reset it when n changes.
func ExpMod(x, a, e, n *Int, rr *RRCache) (err error) {
	defer guardAlloc("exp_mod", &err)

	if e.neg {
		return newErr("exp_mod", KindBadInput, "negative exponent")
	}
	if n.neg || IsZero(n) || CmpInt(n, 1) == 0 {
		return newErr("exp_mod", KindBadInput, "modulus must be > 1")
	}
	numWords := significant(n.limbs)
	if n.limbs[0]&1 == 0 {
		return newErr("exp_mod", KindBadInput, "modulus must be odd (even-modulus Montgomery path not supported)")
	}

	if IsZero(e) {
		x.limbs = x.limbs.setWord(1)
		x.neg = false
		return nil
	}

	nMag := n.limbs[:numWords]
	k0 := montInverse(nMag[0])
	rrVal := montgomeryRR(nMag, numWords, rr)

	// Reduce |a| mod n (magnitude only — the sign-flip below folds a's
	// sign back in after the exponentiation), then lift into Montgomery
	// form.
	var qDump, aRem nat
	_, aRem = qDump.div(aRem, a.limbs, nMag)
	aMag := make(nat, numWords)
	copy(aMag, aRem)

	w := windowWidth(e.limbs.bitLen())
	numOdd := 1 << (w - 1)
	powers := make([]nat, numOdd)
	powers[0] = montForm(aMag, rrVal, nMag, k0, numWords) // a^1
	if numOdd > 1 {
		aSq := montMul(powers[0], powers[0], nMag, k0, numWords) // a^2 in Montgomery form
		for i := 1; i < numOdd; i++ {
			powers[i] = montMul(powers[i-1], aSq, nMag, k0, numWords)
		}
	}

	one := make(nat, numWords)
	one[0] = 1
	accMont := montForm(one, rrVal, nMag, k0, numWords) // Montgomery form of 1

	ebits := e.limbs.bitLen()
	i := ebits - 1
	for i >= 0 {
		if e.limbs.bit(uint(i)) == 0 {
			accMont = montMul(accMont, accMont, nMag, k0, numWords)
			i--
			continue
		}
		l := i - int(w) + 1
		if l < 0 {
			l = 0
		}
		for e.limbs.bit(uint(l)) == 0 {
			l++
		}
		for k := i; k >= l; k-- {
			accMont = montMul(accMont, accMont, nMag, k0, numWords)
		}
		var val uint
		for k := i; k >= l; k-- {
			val = val<<1 | uint(e.limbs.bit(uint(k)))
		}
		accMont = montMul(accMont, powers[(val-1)/2], nMag, k0, numWords)
		i = l - 1
	}

	// Convert out of Montgomery form: montmul(acc, 1) == acc * R^-1.
	result := montMul(accMont, one, nMag, k0, numWords)

	// One last variable-time cleanup: montMul's per-step subtract only
	// guarantees an "almost" reduced output, so the result may still
	// need one (rarely two) full-width subtractions to land in [0,n).
	resNat := nat(result).norm()
	if resNat.cmp(nMag) >= 0 {
		resNat = resNat.sub(resNat, nMag)
		if resNat.cmp(nMag) >= 0 {
			var q nat
			_, resNat = q.div(resNat, resNat, nMag)
		}
	}

	// Step 7: a negative base with an odd exponent flips the sign of
	// the true result relative to the |a|-based computation above;
	// fold that back in and reduce to the canonical residue in [0,n).
	if a.neg && e.limbs.bit(0) == 1 && significant(resNat) > 0 {
		resNat = resNat.sub(nMag, resNat)
	}

	x.limbs = x.limbs.set(resNat)
	x.neg = false
	x.canon()
	return nil
}
