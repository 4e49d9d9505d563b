// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpi

import "testing"

// Invariant 9, part 1: read_binary(write_binary(X)) = |X|.
func TestBinaryRoundTrip(t *testing.T) {
	vals := []string{"0", "1", "ff", "deadbeefcafebabe", "10000000000000000", "123456789abcdef0123456789abcdef"}
	for _, v := range vals {
		x := mustHex(t, v)
		buf := make([]byte, Size(x))
		if err := WriteBinary(x, buf); err != nil {
			t.Fatalf("WriteBinary(%s): %v", v, err)
		}
		var back Int
		if err := ReadBinary(&back, buf); err != nil {
			t.Fatalf("ReadBinary(%s): %v", v, err)
		}
		if CmpAbs(&back, x) != 0 {
			t.Errorf("round trip mismatch for %s: got %s", v, renderSigned(t, &back))
		}
	}
}

func TestWriteBinaryBufferTooSmall(t *testing.T) {
	x := mustHex(t, "deadbeef")
	buf := make([]byte, 1)
	if err := WriteBinary(x, buf); !IsErrKind(err, KindBufferTooSmall) {
		t.Errorf("got %v, want KindBufferTooSmall", err)
	}
}

func TestWriteBinaryZeroPads(t *testing.T) {
	x := mustHex(t, "ff")
	buf := make([]byte, 4)
	if err := WriteBinary(x, buf); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	want := []byte{0, 0, 0, 0xff}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf = %v, want %v", buf, want)
			break
		}
	}
}

// Invariant 9, part 2: read_string(write_string(X,r),r) = X for r in 2..16.
func TestStringRoundTripAllRadices(t *testing.T) {
	vals := []string{"0", "1", "255", "123456789", "987654321098765432109876543210"}
	for radix := 2; radix <= 16; radix++ {
		for _, v := range vals {
			x := mustDec(t, v)
			olen, err := WriteString(x, radix, nil)
			if err == nil {
				t.Fatalf("WriteString(%s, radix %d, nil) unexpectedly succeeded", v, radix)
			}
			if !IsErrKind(err, KindBufferTooSmall) {
				t.Fatalf("WriteString sizing query: got %v, want KindBufferTooSmall", err)
			}
			buf := make([]byte, olen)
			n, err := WriteString(x, radix, buf)
			if err != nil {
				t.Fatalf("WriteString(%s, radix %d): %v", v, radix, err)
			}
			if n != olen {
				t.Errorf("WriteString second call returned olen=%d, first call said %d", n, olen)
			}
			s := string(buf[:n-1])

			var back Int
			if err := ReadString(&back, s, radix); err != nil {
				t.Fatalf("ReadString(%q, radix %d): %v", s, radix, err)
			}
			if CmpMPI(&back, x) != 0 {
				t.Errorf("radix %d: round trip %s -> %q -> %s", radix, v, s, renderSigned(t, &back))
			}
		}
	}
}

func TestReadStringSign(t *testing.T) {
	var x Int
	if err := ReadString(&x, "-2a", 16); err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if CmpMPI(&x, mustDec(t, "-42")) != 0 {
		t.Errorf("ReadString(-2a,16) = %s, want -42", renderSigned(t, &x))
	}
}

func TestReadStringInvalidCharacter(t *testing.T) {
	var x Int
	if err := ReadString(&x, "12g", 16); !IsErrKind(err, KindInvalidCharacter) {
		t.Errorf("got %v, want KindInvalidCharacter", err)
	}
}

func TestReadStringEmptyInput(t *testing.T) {
	var x Int
	if err := ReadString(&x, "", 10); !IsErrKind(err, KindInvalidCharacter) {
		t.Errorf("got %v, want KindInvalidCharacter for empty input", err)
	}
	if err := ReadString(&x, "-", 10); !IsErrKind(err, KindInvalidCharacter) {
		t.Errorf("got %v, want KindInvalidCharacter for bare sign", err)
	}
}

func TestReadStringBadRadix(t *testing.T) {
	var x Int
	if err := ReadString(&x, "10", 17); !IsErrKind(err, KindBadInput) {
		t.Errorf("got %v, want KindBadInput for radix 17", err)
	}
	if err := ReadString(&x, "10", 1); !IsErrKind(err, KindBadInput) {
		t.Errorf("got %v, want KindBadInput for radix 1", err)
	}
}

func TestRandomFill(t *testing.T) {
	calls := 0
	stub := func(buf []byte) error {
		calls++
		for i := range buf {
			buf[i] = byte(i + 1)
		}
		return nil
	}
	var x Int
	if err := RandomFill(&x, 8, stub); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	if calls != 1 {
		t.Errorf("rng callback invoked %d times, want 1", calls)
	}
	if Size(&x) > 8 {
		t.Errorf("Size(x) = %d, want <= 8", Size(&x))
	}
}
