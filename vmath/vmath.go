package vmath

import (
	"math/bits"
	"strconv"
)

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
)

// fracDigits is the number of decimal places emitted by Format
const fracDigits = 4

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// MulDiv computes (a * b) / c with 128-bit intermediate
// Used for mapping world coordinates onto the cell grid without precision loss
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	q, _ := bits.Div64(hi, lo, uint64(c))
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// Format renders f as a decimal string with fixed fractional digits, truncated toward zero
func Format(f int64) string {
	neg := f < 0
	u := uint64(f)
	if neg {
		u = uint64(-f)
	}

	whole := u >> Shift
	frac := u & Mask

	var pow uint64 = 1
	for i := 0; i < fracDigits; i++ {
		pow *= 10
	}
	fracDec := (frac * pow) >> Shift

	buf := make([]byte, 0, 24)
	if neg && (whole != 0 || fracDec != 0) {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, whole, 10)
	buf = append(buf, '.')

	digits := strconv.FormatUint(fracDec, 10)
	for i := len(digits); i < fracDigits; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	return string(buf)
}

// --- Randomness ---

// FastRand is a xorshift64 generator; the sequence depends only on the seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Advance steps the generator once, discarding the value
func (r *FastRand) Advance() {
	r.Next()
}

// FixedRange returns a Q32.32 value drawn uniformly from [lo, hi]
// Returns lo when hi <= lo
func (r *FastRand) FixedRange(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1
	return lo + int64(r.Next()%span)
}
