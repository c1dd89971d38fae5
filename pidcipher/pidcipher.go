/* Apache v2 license
 * Copyright (C) 2026 KeyLab
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pidcipher converts product IDs between the hyphenated form printed
// on retail packaging and the flattened ECDATA form embedded in activation
// records.
//
// The conversion is a per-block substitution-permutation cipher: each of the
// four five-character blocks moves to a fixed position in the output, and
// every character in it is rotated within its own character class. Digits
// rotate through '0'-'9' and upper-case letters through 'A'-'Z', so a block's
// mix of digits and letters survives the trip. Both directions are total on
// well-formed input and Decode(Encode(x)) == x for every valid product ID.
package pidcipher

import (
	"github.com/pkg/errors"
	"strings"
)

const (
	// PIDLength is the length of a hyphenated product ID: four blocks of
	// five characters joined by three hyphens.
	PIDLength = 23
	// ECDataLength is the length of the flattened ECDATA form.
	ECDataLength = 20

	blockLen  = 5
	numBlocks = 4
)

// Failure kinds reported by Encode and Decode. Returned errors wrap these
// with the offending position and character; use errors.Cause to test kinds.
var (
	ErrInvalidLength = errors.New("invalid length")
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// blockShift says where a five-character block lands in the output and how
// far its digits and letters rotate within their ASCII windows.
type blockShift struct {
	dest    int
	digits  int
	letters int
}

// encodeShifts moves product ID block i to ECDATA block dest under the given
// rotations. decodeShifts is its inverse, keyed by ECDATA block, with each
// rotation expressed as the complementary positive stride.
var (
	encodeShifts = [numBlocks]blockShift{
		{dest: 2, digits: 7, letters: 23},
		{dest: 0, digits: 1, letters: 1},
		{dest: 3, digits: 2, letters: 2},
		{dest: 1, digits: 1, letters: 17},
	}
	decodeShifts = [numBlocks]blockShift{
		{dest: 1, digits: 10 - 1, letters: 26 - 1},
		{dest: 3, digits: 10 - 1, letters: 26 - 17},
		{dest: 0, digits: 10 - 7, letters: 26 - 23},
		{dest: 2, digits: 10 - 2, letters: 26 - 2},
	}
)

// rotate substitutes c within its character class.
func rotate(c byte, digitStride, letterStride int) (byte, error) {
	switch {
	case '0' <= c && c <= '9':
		return '0' + byte((int(c-'0')+digitStride)%10), nil
	case 'A' <= c && c <= 'Z':
		return 'A' + byte((int(c-'A')+letterStride)%26), nil
	default:
		return 0, errors.Wrapf(ErrUnknownSymbol,
			"'%c' is not a digit or upper-case letter", c)
	}
}

// Encode converts a product ID to its ECDATA form.
//
// The input must be exactly four hyphen-separated blocks of five characters,
// each character a digit or upper-case letter. Encode never modifies its
// input before validating, so callers should trim surrounding whitespace.
func Encode(pid string) (string, error) {
	if len(pid) != PIDLength {
		return "", errors.Wrapf(ErrInvalidLength,
			"a product ID should have %d characters, but this has %d",
			PIDLength, len(pid))
	}

	blocks := strings.Split(pid, "-")
	if len(blocks) != numBlocks {
		return "", errors.Wrapf(ErrInvalidLength,
			"a product ID should have %d blocks separated by '-', but this has %d",
			numBlocks, len(blocks))
	}

	out := make([]byte, ECDataLength)
	for i, block := range blocks {
		if len(block) != blockLen {
			return "", errors.Wrapf(ErrInvalidLength,
				"block %d should have %d characters, but this has %d",
				i, blockLen, len(block))
		}

		shift := encodeShifts[i]
		for j := 0; j < blockLen; j++ {
			c, err := rotate(block[j], shift.digits, shift.letters)
			if err != nil {
				return "", errors.Wrapf(err, "block %d, position %d", i, j)
			}
			out[shift.dest*blockLen+j] = c
		}
	}

	return string(out), nil
}

// Decode converts an ECDATA string back to the product ID that produced it.
//
// The input must be exactly 20 digits or upper-case letters; hyphens are not
// part of the ECDATA form and are rejected like any other foreign character.
func Decode(ecdata string) (string, error) {
	if len(ecdata) != ECDataLength {
		return "", errors.Wrapf(ErrInvalidLength,
			"ECDATA should have %d characters, but this has %d",
			ECDataLength, len(ecdata))
	}

	out := make([]byte, PIDLength)
	for i := range out {
		out[i] = '-'
	}

	for i := 0; i < numBlocks; i++ {
		shift := decodeShifts[i]
		for j := 0; j < blockLen; j++ {
			c, err := rotate(ecdata[i*blockLen+j], shift.digits, shift.letters)
			if err != nil {
				return "", errors.Wrapf(err, "block %d, position %d", i, j)
			}
			out[shift.dest*(blockLen+1)+j] = c
		}
	}

	return string(out), nil
}
