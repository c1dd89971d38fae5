// Package serial32 converts between the two activation key forms that share
// an internal digit layout: the 31-digit PID2 and the 20-symbol serial
// number.
//
// A PID2 is a plain string of 31 decimal digits. Installers usually show it
// hyphenated for readability (7-7-7-7-3), but the hyphens carry no data and
// the packing below works on the bare digits. The serial number is the same
// information re-expressed for humans: 20 symbols from a restricted
// alphabet, grouped like a product ID (four blocks of five, joined by
// hyphens) so the two can share entry fields and printed card layouts.
//
// The relation between them is positional, not arithmetic. The 31 digit
// positions are grouped into ten fields by a fixed scatter table; a field's
// digits are not adjacent in the PID2, and three positions (7, 15 and 23)
// belong to no field at all. Each field value is then split by 32 into a
// quotient and a remainder, and each part becomes one symbol. Ten fields,
// two symbols each, gives the 20 symbols of the serial.
//
// The alphabet has 29 symbols, not 32. It was chosen by dropping the
// characters people mis-read when keying codes by hand (0, 1 and 5, plus I,
// L, O and S), and nobody widened the radix to match. Field values large
// enough to need the three missing symbols exist, and for them packing
// simply fails; see Pack. Unpacking has the opposite wrinkle: any pair of
// alphabet symbols maps to some field value, so Unpack also accepts serials
// Pack would never emit, flag pairs outside the four sentinel combinations
// included.
//
// Field 3 is special. It covers a single digit and is stored not as a
// value but as two sentinel symbols that together keep only the digit's
// low bit and whether its half equals one. The encoding is lossy for every
// digit but 0, and the historical decode table is preserved here rather
// than repaired, so round trips through this field follow the legacy
// behavior exactly.
package serial32
