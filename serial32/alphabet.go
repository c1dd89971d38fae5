package serial32

import (
	"github.com/pkg/errors"
)

// Alphabet is the ordered symbol set serial numbers are written in. It keeps
// the digits and upper-case letters that survive transcription by hand:
// 0, 1 and 5 are dropped along with I, L, O and S, which they are commonly
// mistaken for.
const Alphabet = "2346789ABCDEFGHJKMNPQRTUVWXYZ"

// AlphabetSize is the number of symbols in Alphabet. Field values are split
// on a radix of 32, so indices 29 through 31 are computable but have no
// symbol; Pack reports them as ErrIndexOutOfRange.
const AlphabetSize = len(Alphabet)

// Failure kinds reported by this package. Returned errors wrap these with
// the offending position, symbol, or value; use errors.Cause to test kinds.
var (
	ErrInvalidLength     = errors.New("invalid length")
	ErrUnsupportedSymbol = errors.New("unsupported symbol")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// symbolIndex maps an ASCII byte to its Alphabet index plus one; zero marks
// bytes outside the alphabet.
var symbolIndex [128]int8

func init() {
	for i := 0; i < len(Alphabet); i++ {
		symbolIndex[Alphabet[i]] = int8(i) + 1
	}
}

// Symbol returns the alphabet symbol at index i.
func Symbol(i int) (byte, error) {
	if i < 0 || i >= AlphabetSize {
		return 0, errors.Wrapf(ErrIndexOutOfRange,
			"index %d should be in [0, %d)", i, AlphabetSize)
	}
	return Alphabet[i], nil
}

// Index returns the alphabet index of c.
func Index(c byte) (int, error) {
	if c >= 128 || symbolIndex[c] == 0 {
		return 0, errors.Wrapf(ErrUnsupportedSymbol,
			"'%c' is not in the serial alphabet", c)
	}
	return int(symbolIndex[c]) - 1, nil
}
