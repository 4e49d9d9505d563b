// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpi

import "testing"

// Boundary scenario S3: 4^13 mod 497 = 445.
func TestExpModBoundaryS3(t *testing.T) {
	a := mustDec(t, "4")
	e := mustDec(t, "13")
	n := mustDec(t, "497")
	var x Int
	if err := ExpMod(&x, a, e, n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if CmpMPI(&x, mustDec(t, "445")) != 0 {
		t.Errorf("4^13 mod 497 = %s, want 445", renderSigned(t, &x))
	}
}

// Invariant 6, part 1: exp_mod(A,0,N) = 1 mod N.
func TestExpModZeroExponent(t *testing.T) {
	a := mustDec(t, "123456789")
	n := mustDec(t, "97")
	var x Int
	if err := ExpMod(&x, a, mustDec(t, "0"), n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if CmpMPI(&x, mustDec(t, "1")) != 0 {
		t.Errorf("A^0 mod N = %s, want 1", renderSigned(t, &x))
	}
}

// Invariant 6, part 2: exp_mod(A,1,N) = A mod N.
func TestExpModOneExponent(t *testing.T) {
	a := mustDec(t, "12345")
	n := mustDec(t, "97")
	var x, want Int
	if err := ExpMod(&x, a, mustDec(t, "1"), n, nil); err != nil {
		t.Fatalf("ExpMod: %v", err)
	}
	if err := ModMPI(&want, a, n); err != nil {
		t.Fatalf("ModMPI: %v", err)
	}
	if CmpMPI(&x, &want) != 0 {
		t.Errorf("A^1 mod N = %s, want %s", renderSigned(t, &x), renderSigned(t, &want))
	}
}

// Invariant 6, part 3: exp_mod(A,E1+E2,N) = exp_mod(A,E1,N)*exp_mod(A,E2,N) mod N.
func TestExpModAdditivity(t *testing.T) {
	a := mustDec(t, "7")
	n := mustDec(t, "1000000007")
	e1 := mustDec(t, "123")
	e2 := mustDec(t, "456")
	var eSum Int
	if err := AddMPI(&eSum, e1, e2); err != nil {
		t.Fatalf("AddMPI: %v", err)
	}

	var x1, x2, xSum, product, want Int
	if err := ExpMod(&x1, a, e1, n, nil); err != nil {
		t.Fatalf("ExpMod e1: %v", err)
	}
	if err := ExpMod(&x2, a, e2, n, nil); err != nil {
		t.Fatalf("ExpMod e2: %v", err)
	}
	if err := ExpMod(&xSum, a, &eSum, n, nil); err != nil {
		t.Fatalf("ExpMod eSum: %v", err)
	}
	if err := MulMPI(&product, &x1, &x2); err != nil {
		t.Fatalf("MulMPI: %v", err)
	}
	if err := ModMPI(&want, &product, n); err != nil {
		t.Fatalf("ModMPI: %v", err)
	}
	if CmpMPI(&xSum, &want) != 0 {
		t.Errorf("A^(E1+E2) mod N = %s, want %s", renderSigned(t, &xSum), renderSigned(t, &want))
	}
}

func TestExpModRejectsEvenModulus(t *testing.T) {
	a := mustDec(t, "3")
	e := mustDec(t, "5")
	n := mustDec(t, "100")
	var x Int
	if err := ExpMod(&x, a, e, n, nil); !IsErrKind(err, KindBadInput) {
		t.Errorf("got %v, want KindBadInput for even modulus", err)
	}
}

func TestExpModRejectsNegativeExponent(t *testing.T) {
	a := mustDec(t, "3")
	e := mustDec(t, "-5")
	n := mustDec(t, "97")
	var x Int
	if err := ExpMod(&x, a, e, n, nil); !IsErrKind(err, KindBadInput) {
		t.Errorf("got %v, want KindBadInput for negative exponent", err)
	}
}

// RRCache reuse across repeated calls against the same modulus must
// produce the same results as passing nil every time.
func TestExpModRRCacheReuse(t *testing.T) {
	n := mustDec(t, "1000000007")
	var rr RRCache
	for _, e := range []string{"3", "17", "255", "65537"} {
		var withCache, withoutCache Int
		if err := ExpMod(&withCache, mustDec(t, "2"), mustDec(t, e), n, &rr); err != nil {
			t.Fatalf("ExpMod with cache (e=%s): %v", e, err)
		}
		if err := ExpMod(&withoutCache, mustDec(t, "2"), mustDec(t, e), n, nil); err != nil {
			t.Fatalf("ExpMod without cache (e=%s): %v", e, err)
		}
		if CmpMPI(&withCache, &withoutCache) != 0 {
			t.Errorf("e=%s: cached result %s != uncached result %s", e, renderSigned(t, &withCache), renderSigned(t, &withoutCache))
		}
	}
}
