/* Apache v2 license
 * Copyright (C) 2026 KeyLab
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package keyconv recognizes which activation key form a token carries and
// derives the other forms from it.
//
// Three shapes are accepted: the hyphenated product ID (23 characters in
// four blocks of five), the 31-digit PID2 (display hyphens allowed), and
// the flattened 20-character ECDATA string. Shape alone decides the
// conversion; the three are mutually exclusive, so no token matches twice.
package keyconv

import (
	"github.com/keylab/keycode/pidcipher"
	"github.com/keylab/keycode/serial32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"strings"
)

// ErrUnrecognizedShape reports a token that matches none of the accepted
// key forms. Returned errors wrap it with the token's length and hyphen
// count; use errors.Cause to test for it.
var ErrUnrecognizedShape = errors.New("unrecognized key shape")

// Kind identifies an activation key form.
type Kind int

const (
	KindUnknown Kind = iota
	KindPID
	KindPID2
	KindECData
)

func (k Kind) String() string {
	switch k {
	case KindPID:
		return "PID"
	case KindPID2:
		return "PID2"
	case KindECData:
		return "ECDATA"
	}
	return "unknown"
}

// Field is one labeled output of a conversion.
type Field struct {
	Label string
	Value string
}

// Result carries everything derived from one token.
type Result struct {
	Input  string
	Kind   Kind
	Fields []Field
}

// Classify reports which key form token has, by shape alone: 23 characters
// with three hyphens is a product ID, 31 digits once display hyphens are
// stripped is a PID2, and 20 characters without hyphens is ECDATA. Deeper
// validation belongs to the conversion itself, so a token of the right
// shape with bad contents still classifies.
//
// Classify does not trim; callers own surrounding whitespace.
func Classify(token string) Kind {
	switch {
	case len(token) == pidcipher.PIDLength && strings.Count(token, "-") == 3:
		return KindPID
	case isPID2(token):
		return KindPID2
	case len(token) == pidcipher.ECDataLength && !strings.Contains(token, "-"):
		return KindECData
	}
	return KindUnknown
}

func isPID2(token string) bool {
	digits := stripHyphens(token)
	if len(digits) != serial32.PID2Length {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

func stripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// HyphenatePID2 formats a raw 31-digit PID2 the way installers display it,
// in groups of 7-7-7-7-3. Strings of any other length come back unchanged.
func HyphenatePID2(pid2 string) string {
	if len(pid2) != serial32.PID2Length {
		return pid2
	}
	return strings.Join([]string{
		pid2[:7], pid2[7:14], pid2[14:21], pid2[21:28], pid2[28:],
	}, "-")
}

// Convert classifies token and derives both other key forms from it.
//
// The outputs, in order, per input kind:
//
//	PID    -> ECDATA, PID2
//	PID2   -> ECDATA, PID
//	ECDATA -> PID, PID2
//
// The PID reported for a PID2 input is the packed serial number under the
// product ID label: the two forms share the four-blocks-of-five shape, and
// no deeper mapping between them exists.
//
// Conversions are all or nothing. If any leg fails, for instance a product
// ID whose symbols fall outside the serial alphabet, Convert returns only
// the error. Convert does not trim token; callers own whitespace.
func Convert(token string) (Result, error) {
	res := Result{Input: token, Kind: Classify(token)}

	log := Logger()
	log.Debug("classified input",
		zap.Int("length", len(token)),
		zap.Int("hyphens", strings.Count(token, "-")),
		zap.Stringer("kind", res.Kind))

	switch res.Kind {
	case KindPID:
		ecdata, err := pidcipher.Encode(token)
		if err != nil {
			return Result{}, errors.Wrap(err, "converting product ID")
		}
		pid2, err := serial32.Unpack(token)
		if err != nil {
			return Result{}, errors.Wrap(err, "converting product ID")
		}
		res.Fields = []Field{
			{Label: "ECDATA", Value: ecdata},
			{Label: "PID2", Value: HyphenatePID2(pid2)},
		}

	case KindPID2:
		serial, err := serial32.Pack(stripHyphens(token))
		if err != nil {
			return Result{}, errors.Wrap(err, "converting PID2")
		}
		ecdata, err := pidcipher.Encode(serial)
		if err != nil {
			return Result{}, errors.Wrap(err, "converting PID2")
		}
		res.Fields = []Field{
			{Label: "ECDATA", Value: ecdata},
			{Label: "PID", Value: serial},
		}

	case KindECData:
		pid, err := pidcipher.Decode(token)
		if err != nil {
			return Result{}, errors.Wrap(err, "converting ECDATA")
		}
		pid2, err := serial32.Unpack(pid)
		if err != nil {
			return Result{}, errors.Wrap(err, "converting ECDATA")
		}
		res.Fields = []Field{
			{Label: "PID", Value: pid},
			{Label: "PID2", Value: HyphenatePID2(pid2)},
		}

	default:
		return Result{}, errors.Wrapf(ErrUnrecognizedShape,
			"%d characters with %d hyphens: a product ID has 23 characters "+
				"in 5-5-5-5 blocks, ECDATA has 20 with no hyphens, and a PID2 "+
				"has 31 digits", len(token), strings.Count(token, "-"))
	}

	log.Debug("converted",
		zap.Stringer("kind", res.Kind),
		zap.Int("outputs", len(res.Fields)))
	return res, nil
}
