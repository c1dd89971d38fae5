/* Apache v2 license
 * Copyright (C) 2026 KeyLab
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package serial32

import (
	"github.com/pkg/errors"
)

const (
	// PID2Length is the number of decimal digits in an unhyphenated PID2.
	PID2Length = 31
	// SerialLength is the length of a serial number: four blocks of five
	// alphabet symbols joined by three hyphens.
	SerialLength = 23

	serialSymbols = 20 // symbols in a serial, hyphens removed
	packRadix     = 32 // field values split as value = quotient*32 + remainder
)

// fieldPositions lists, most significant digit first, the PID2 positions
// that make up each packed field. Field 3 is the single-digit flag field.
// Positions 7, 15 and 23 belong to no field; Unpack leaves them '0' and
// Pack never reads them.
var fieldPositions = [10][]int{
	{30, 0, 2},
	{4, 6, 9},
	{11, 13, 16},
	{18},
	{20, 22, 25},
	{27, 29, 1},
	{3, 5, 8},
	{10, 12, 14},
	{17, 19, 21},
	{24, 26, 28},
}

const flagField = 3

// Flag field sentinels, as alphabet indices. The high slot encodes whether
// the digit halved is one, the low slot whether the digit is odd.
const (
	highOne  = 2  // '4'
	highZero = 28 // 'Z'
	lowOdd   = 23 // 'U'
	lowEven  = 27 // 'Y'
)

// Pack converts a 31-digit PID2 to its serial number.
//
// Every field but the flag field is split as quotient and remainder by 32
// and both parts written as alphabet symbols. The alphabet has only 29
// symbols, so a quotient of 29 or more (field values 928 and up) or a
// remainder of 29 to 31 has no symbol; Pack reports those as
// ErrIndexOutOfRange rather than remapping them.
func Pack(pid2 string) (string, error) {
	if len(pid2) != PID2Length {
		return "", errors.Wrapf(ErrInvalidLength,
			"a PID2 should have %d digits, but this has %d characters",
			PID2Length, len(pid2))
	}
	for i := 0; i < len(pid2); i++ {
		if pid2[i] < '0' || pid2[i] > '9' {
			return "", errors.Wrapf(ErrUnsupportedSymbol,
				"position %d: '%c' is not a decimal digit", i, pid2[i])
		}
	}

	indices := make([]int, serialSymbols)
	for f, positions := range fieldPositions {
		if f == flagField {
			d := int(pid2[positions[0]] - '0')
			if d/2 == 1 {
				indices[2*f] = highOne
			} else {
				indices[2*f] = highZero
			}
			if d%2 == 1 {
				indices[2*f+1] = lowOdd
			} else {
				indices[2*f+1] = lowEven
			}
			continue
		}

		v := 0
		for _, p := range positions {
			v = v*10 + int(pid2[p]-'0')
		}
		q, r := v/packRadix, v%packRadix
		if q >= AlphabetSize {
			return "", errors.Wrapf(ErrIndexOutOfRange,
				"field %d value %d has quotient %d, but the alphabet stops at %d",
				f, v, q, AlphabetSize-1)
		}
		if r >= AlphabetSize {
			return "", errors.Wrapf(ErrIndexOutOfRange,
				"field %d value %d has remainder %d, but the alphabet stops at %d",
				f, v, r, AlphabetSize-1)
		}
		indices[2*f], indices[2*f+1] = q, r
	}

	out := make([]byte, 0, SerialLength)
	for k, idx := range indices {
		if k > 0 && k%5 == 0 {
			out = append(out, '-')
		}
		out = append(out, Alphabet[idx])
	}
	return string(out), nil
}

// Unpack recovers the PID2 a serial number packs.
//
// The input must have the same four-blocks-of-five shape a product ID has.
// Field values are rebuilt as quotient*32 + remainder and their digits
// scattered back to the PID2 positions they came from; the three positions
// that belong to no field come back as '0'.
//
// The flag field is not fully recoverable: its two sentinel symbols keep
// only the pairs for 0 and 1 apart, so an original flag digit of 2 or 3
// reads back as 1 and 4 through 9 read back as 0. Only a 0 flag digit
// survives a Pack/Unpack round trip unchanged.
func Unpack(serial string) (string, error) {
	if len(serial) != SerialLength {
		return "", errors.Wrapf(ErrInvalidLength,
			"a serial number should have %d characters, but this has %d",
			SerialLength, len(serial))
	}

	indices := make([]int, 0, serialSymbols)
	for i := 0; i < len(serial); i++ {
		if i == 5 || i == 11 || i == 17 {
			if serial[i] != '-' {
				return "", errors.Wrapf(ErrInvalidLength,
					"position %d should be '-', but it is '%c'", i, serial[i])
			}
			continue
		}
		idx, err := Index(serial[i])
		if err != nil {
			return "", errors.Wrapf(err, "position %d", i)
		}
		indices = append(indices, idx)
	}

	buf := make([]byte, PID2Length)
	for i := range buf {
		buf[i] = '0'
	}

	for f, positions := range fieldPositions {
		if f == flagField {
			buf[positions[0]] = '0' + flagDigit(indices[2*f], indices[2*f+1])
			continue
		}

		v := indices[2*f]*packRadix + indices[2*f+1]
		for k := len(positions) - 1; k >= 0; k-- {
			buf[positions[k]] = '0' + byte(v%10)
			v /= 10
		}
	}

	return string(buf), nil
}

// flagDigit inverts the flag field sentinels. The exact pairs are matched
// first; any other combination falls back to the high slot alone. This
// keeps the historical decode table, under which the pair Pack emits for 3
// reads back as 1.
func flagDigit(hi, lo int) byte {
	switch {
	case hi == highOne && lo == lowOdd:
		return 1
	case hi == highZero && lo == lowEven:
		return 0
	case hi == highOne:
		return 1
	default:
		return 0
	}
}
