// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpi

import "testing"

func TestAndOrXorPositive(t *testing.T) {
	a := mustDec(t, "12") // 0b1100
	b := mustDec(t, "10") // 0b1010

	var and, or, xor Int
	if err := And(&and, a, b); err != nil {
		t.Fatalf("And: %v", err)
	}
	if CmpMPI(&and, mustDec(t, "8")) != 0 {
		t.Errorf("12 & 10 = %s, want 8", renderSigned(t, &and))
	}
	if err := Or(&or, a, b); err != nil {
		t.Fatalf("Or: %v", err)
	}
	if CmpMPI(&or, mustDec(t, "14")) != 0 {
		t.Errorf("12 | 10 = %s, want 14", renderSigned(t, &or))
	}
	if err := Xor(&xor, a, b); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	if CmpMPI(&xor, mustDec(t, "6")) != 0 {
		t.Errorf("12 ^ 10 = %s, want 6", renderSigned(t, &xor))
	}
}

func TestAndNotPositive(t *testing.T) {
	a := mustDec(t, "12") // 0b1100
	b := mustDec(t, "10") // 0b1010
	var z Int
	if err := AndNot(&z, a, b); err != nil {
		t.Fatalf("AndNot: %v", err)
	}
	if CmpMPI(&z, mustDec(t, "4")) != 0 {
		t.Errorf("12 &^ 10 = %s, want 4", renderSigned(t, &z))
	}
}

// Not(x) == -(x+1), the two's-complement identity Not relies on.
func TestNotIdentity(t *testing.T) {
	for _, v := range []string{"0", "1", "-1", "255", "-256"} {
		x := mustDec(t, v)
		var z Int
		if err := Not(&z, x); err != nil {
			t.Fatalf("Not(%s): %v", v, err)
		}
		var want Int
		if err := AddInt(&want, x, 1); err != nil {
			t.Fatalf("AddInt: %v", err)
		}
		want.neg = !want.neg
		want.canon()
		if CmpMPI(&z, &want) != 0 {
			t.Errorf("Not(%s) = %s, want %s", v, renderSigned(t, &z), renderSigned(t, &want))
		}
	}
}

// De Morgan's law, exercised across sign combinations: ^(a&b) == ^a | ^b.
func TestDeMorgan(t *testing.T) {
	cases := []struct{ a, b string }{
		{"12", "10"},
		{"-12", "10"},
		{"12", "-10"},
		{"-12", "-10"},
	}
	for _, c := range cases {
		a := mustDec(t, c.a)
		b := mustDec(t, c.b)

		var andAB, notAndAB Int
		if err := And(&andAB, a, b); err != nil {
			t.Fatalf("And: %v", err)
		}
		if err := Not(&notAndAB, &andAB); err != nil {
			t.Fatalf("Not: %v", err)
		}

		var notA, notB, orNotAB Int
		if err := Not(&notA, a); err != nil {
			t.Fatalf("Not a: %v", err)
		}
		if err := Not(&notB, b); err != nil {
			t.Fatalf("Not b: %v", err)
		}
		if err := Or(&orNotAB, &notA, &notB); err != nil {
			t.Fatalf("Or: %v", err)
		}

		if CmpMPI(&notAndAB, &orNotAB) != 0 {
			t.Errorf("De Morgan failed for a=%s, b=%s: ^(a&b)=%s, ^a|^b=%s",
				c.a, c.b, renderSigned(t, &notAndAB), renderSigned(t, &orNotAB))
		}
	}
}
