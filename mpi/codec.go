// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the codec surface: big-endian binary
// import/export, radix 2-16 string import/export, and RNG-callback-driven
// random fill. The binary codec follows FillBytes/SetBytes-style
// semantics adapted to fixed-width Word limbs instead of a variable-base
// limb slice; the string codec uses an accumulate-by-multiply-and-add
// structure for parsing and repeated-divide for rendering.

package mpi

const hexDigits = "0123456789abcdef"

// WriteBinary renders |x| as a big-endian unsigned byte string,
// left-padded with zeros to len(buf). Fails with buffer-too-small when
// buf is shorter than Size(x).
func WriteBinary(x *Int, buf []byte) (err error) {
	defer guardAlloc("write_binary", &err)
	need := Size(x)
	if len(buf) < need {
		return newErr("write_binary", KindBufferTooSmall, "buffer too small")
	}
	for i := range buf {
		buf[i] = 0
	}
	i := len(buf)
	n := significant(x.limbs)
	for k := 0; k < n; k++ {
		w := x.limbs[k]
		for j := 0; j < _S && i > 0; j++ {
			i--
			buf[i] = byte(w)
			w >>= 8
		}
	}
	return nil
}

// ReadBinary interprets buf as a big-endian unsigned magnitude, grows
// x to hold it, and sets x's sign to +1.
func ReadBinary(x *Int, buf []byte) (err error) {
	defer guardAlloc("read_binary", &err)
	n := len(buf)
	numWords := (n + _S - 1) / _S
	if numWords == 0 {
		numWords = 1
	}
	if e := x.Grow(numWords); e != nil {
		return e
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	i := n
	for w := 0; w < numWords && i > 0; w++ {
		var word Word
		for j := 0; j < _S && i > 0; j++ {
			i--
			word |= Word(buf[i]) << (8 * uint(j))
		}
		x.limbs[w] = word
	}
	x.limbs = x.limbs.norm()
	x.neg = false
	x.canon()
	return nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ReadString parses s in the given radix (2..16) into x. A leading '-'
// or '+' sets the sign; any other character outside the radix fails
// with invalid-character.
func ReadString(x *Int, s string, radix int) (err error) {
	defer guardAlloc("read_string", &err)
	if radix < 2 || radix > 16 {
		return newErr("read_string", KindBadInput, "radix must be in [2,16]")
	}
	i := 0
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		i = 1
	}
	if i >= len(s) {
		return newErr("read_string", KindInvalidCharacter, "no digits")
	}

	acc := new(Int)
	var radixInt Int
	radixInt.Lset(int64(radix))
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= radix {
			return newErr("read_string", KindInvalidCharacter, "invalid digit for radix")
		}
		if e := MulMPI(acc, acc, &radixInt); e != nil {
			return e
		}
		if e := AddInt(acc, acc, int64(d)); e != nil {
			return e
		}
	}
	x.limbs = x.limbs.set(acc.limbs)
	x.neg = neg && !IsZero(acc)
	x.canon()
	return nil
}

// stringDigits renders |x| as digits in the given radix, most
// significant digit first, with a leading '-' when x is negative.
func stringDigits(x *Int, radix int) (string, error) {
	if IsZero(x) {
		return "0", nil
	}
	var tmp Int
	if e := absInto(&tmp, x); e != nil {
		return "", e
	}
	var radixInt Int
	radixInt.Lset(int64(radix))

	var digits []byte
	for !IsZero(&tmp) {
		var q, r Int
		if e := DivMPI(&q, &r, &tmp, &radixInt); e != nil {
			return "", e
		}
		var rv int64
		if significant(r.limbs) > 0 {
			rv = int64(r.limbs[0])
		}
		digits = append(digits, hexDigits[rv])
		if e := tmp.Copy(&q); e != nil {
			return "", e
		}
	}
	if x.neg {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// WriteString renders x into buf in the given radix, NUL-terminated,
// and returns the number of bytes required (digits + sign + NUL) in
// olen. Calling with an empty buf is a sizing query: it reports olen
// and fails with buffer-too-small without writing anything.
func WriteString(x *Int, radix int, buf []byte) (olen int, err error) {
	defer guardAlloc("write_string", &err)
	if radix < 2 || radix > 16 {
		return 0, newErr("write_string", KindBadInput, "radix must be in [2,16]")
	}
	digits, e := stringDigits(x, radix)
	if e != nil {
		return 0, e
	}
	need := len(digits) + 1
	if len(buf) < need {
		return need, newErr("write_string", KindBufferTooSmall, "buffer too small")
	}
	copy(buf, digits)
	buf[len(digits)] = 0
	return need, nil
}

// RandomFill sets x to a uniformly random value of exactly nbytes
// bytes (sign +1), drawing bytes from rng.
func RandomFill(x *Int, nbytes int, rng RandFunc) (err error) {
	defer guardAlloc("random_fill", &err)
	if nbytes <= 0 {
		return newErr("random_fill", KindBadInput, "nbytes must be positive")
	}
	buf := make([]byte, nbytes)
	if e := rng(buf); e != nil {
		return e
	}
	return ReadBinary(x, buf)
}
