package decimal

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Decimal is a fixed-point decimal number with [Scale] digits after the
// decimal point, backed by a 192-bit unsigned integer.
// The represented value is raw / 10^Scale and is always non-negative.
// The zero value is the numeric value of 0 and is ready to use.
//
// Decimal is a plain comparable value: == is numeric equality, copies are
// independent, and it is safe for concurrent use by multiple goroutines.
// Every operation returns a new value; none mutates its receiver.
type Decimal struct {
	raw uint192 // the scaled value, interpreted as raw / 10^Scale
}

// Scale is the number of decimal digits after the decimal point.
const Scale = 18

const (
	wad           = 1_000_000_000_000_000_000 // 10^Scale, the raw value of 1
	halfWad       = wad / 2                   // used for half-up rounding
	percentScaler = wad / 100
	bpsScaler     = wad / 10_000
)

var (
	bigWad     = big.NewInt(wad)
	bigHalfWad = big.NewInt(halfWad)
)

// ErrMathOverflow is the class of every arithmetic failure: overflow of the
// 192-bit width, a subtraction whose true result would be negative, division
// by zero, and a narrowing conversion that does not fit the requested width.
// Use the class's Has method to test an error for membership:
//
//	if ErrMathOverflow.Has(err) { ... }
var ErrMathOverflow = errs.Class("math overflow")

// Zero returns the decimal value 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns the decimal value 1.
func One() Decimal {
	return Decimal{raw: uint192FromUint64(wad)}
}

// Max returns the largest representable decimal,
// which is equal to (2^192 - 1) / 10^Scale.
func Max() Decimal {
	return Decimal{raw: maxUint192}
}

// FromUint64 returns a decimal equal to n.
// The scaled value n * 10^Scale is at most 2^124, so the conversion
// cannot overflow.
func FromUint64(n uint64) Decimal {
	return Decimal{raw: full64(n, wad).uint192()}
}

// FromBig returns a decimal equal to n.
// FromBig returns an error if n is negative or if n * 10^Scale does not
// fit within 192 bits.
func FromBig(n *big.Int) (Decimal, error) {
	if n.Sign() < 0 {
		return Decimal{}, ErrMathOverflow.New("negative value %v", n)
	}
	raw, ok := uint192FromBig(new(big.Int).Mul(n, bigWad))
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%v does not fit in 192 bits when scaled", n)
	}
	return Decimal{raw: raw}, nil
}

// FromPercent returns a decimal equal to p / 100.
func FromPercent(p uint64) Decimal {
	return Decimal{raw: full64(p, percentScaler).uint192()}
}

// FromBps returns a decimal equal to b / 10000,
// where b is a number of basis points.
func FromBps(b uint64) Decimal {
	return Decimal{raw: full64(b, bpsScaler).uint192()}
}

// FromScaled64 returns a decimal whose scaled value is exactly raw,
// that is, the value raw / 10^Scale.
func FromScaled64(raw uint64) Decimal {
	return Decimal{raw: uint192FromUint64(raw)}
}

// FromScaled returns a decimal whose scaled value is exactly raw.
// FromScaled returns an error if raw is negative or does not fit
// within 192 bits.
func FromScaled(raw *big.Int) (Decimal, error) {
	r, ok := uint192FromBig(raw)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("scaled value %v does not fit in 192 bits", raw)
	}
	return Decimal{raw: r}, nil
}

// FromRate returns a decimal equal to r.
// The scaled value of r is embedded verbatim, as [Rate] shares the
// 18-digit scale by contract; no rescaling is performed.
func FromRate(r Rate) Decimal {
	return Decimal{raw: r.raw.uint192()}
}

// Scaled returns the scaled value of d, that is, d * 10^Scale.
func (d Decimal) Scaled() *big.Int {
	return d.raw.big()
}

// Scaled64 returns the scaled value of d as a uint64.
// Scaled64 returns an error if the scaled value does not fit in 64 bits.
func (d Decimal) Scaled64() (uint64, error) {
	n, ok := d.raw.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("scaled value of %q does not fit in uint64", d)
	}
	return n, nil
}

// Percent returns d expressed in percent, truncated towards zero.
func (d Decimal) Percent() *big.Int {
	q, _ := d.raw.quo64(percentScaler)
	return q.big()
}

// Percent64 is like [Decimal.Percent], but narrows the result to uint64.
// Percent64 returns an error if the result does not fit in 64 bits.
func (d Decimal) Percent64() (uint64, error) {
	q, _ := d.raw.quo64(percentScaler)
	n, ok := q.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("%q percent does not fit in uint64", d)
	}
	return n, nil
}

// Bps returns d expressed in basis points, truncated towards zero.
func (d Decimal) Bps() *big.Int {
	q, _ := d.raw.quo64(bpsScaler)
	return q.big()
}

// Bps64 is like [Decimal.Bps], but narrows the result to uint64.
// Bps64 returns an error if the result does not fit in 64 bits.
func (d Decimal) Bps64() (uint64, error) {
	q, _ := d.raw.quo64(bpsScaler)
	n, ok := q.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("%q bps does not fit in uint64", d)
	}
	return n, nil
}

// Rate narrows d to a [Rate] on the same scale.
// Rate returns an error if the scaled value does not fit in 128 bits.
func (d Decimal) Rate() (Rate, error) {
	r, ok := d.raw.uint128()
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q does not fit in a rate", d)
	}
	return Rate{raw: r}, nil
}

// Round returns d rounded to the nearest integer, with ties rounded up.
// The sum raw + 10^Scale/2 is carried in a wide intermediate,
// so rounding itself cannot overflow.
func (d Decimal) Round() *big.Int {
	z := d.raw.big()
	z.Add(z, bigHalfWad)
	return z.Quo(z, bigWad)
}

// Round64 is like [Decimal.Round], but narrows the result to uint64.
// Round64 returns an error if the result does not fit in 64 bits.
func (d Decimal) Round64() (uint64, error) {
	z := d.Round()
	if !z.IsUint64() {
		return 0, ErrMathOverflow.New("%q rounded does not fit in uint64", d)
	}
	return z.Uint64(), nil
}

// Ceil returns d rounded up to the nearest integer.
func (d Decimal) Ceil() *big.Int {
	z := d.raw.big()
	z.Add(z, big.NewInt(wad-1))
	return z.Quo(z, bigWad)
}

// Ceil64 is like [Decimal.Ceil], but narrows the result to uint64.
// Ceil64 returns an error if the result does not fit in 64 bits.
func (d Decimal) Ceil64() (uint64, error) {
	z := d.Ceil()
	if !z.IsUint64() {
		return 0, ErrMathOverflow.New("%q ceiling does not fit in uint64", d)
	}
	return z.Uint64(), nil
}

// Floor returns d rounded down to the nearest integer.
func (d Decimal) Floor() *big.Int {
	q, _ := d.raw.quo64(wad)
	return q.big()
}

// Floor64 is like [Decimal.Floor], but narrows the result to uint64.
// Floor64 returns an error if the result does not fit in 64 bits.
func (d Decimal) Floor64() (uint64, error) {
	q, _ := d.raw.quo64(wad)
	n, ok := q.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("%q floor does not fit in uint64", d)
	}
	return n, nil
}

// Add returns the checked sum of d and e.
// Add returns an error if the sum does not fit within 192 bits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	raw, ok := d.raw.add(e.raw)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q + %q does not fit in 192 bits", d, e)
	}
	return Decimal{raw: raw}, nil
}

// Sub returns the checked difference of d and e.
// Sub returns an error if e is greater than d, as the true result would
// be negative and the representation is unsigned.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	raw, ok := d.raw.sub(e.raw)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q - %q is negative", d, e)
	}
	return Decimal{raw: raw}, nil
}

// Mul64 returns the checked product of d and n.
// The result keeps the scale of d.
func (d Decimal) Mul64(n uint64) (Decimal, error) {
	raw, ok := d.raw.mul64(n)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q * %v does not fit in 192 bits", d, n)
	}
	return Decimal{raw: raw}, nil
}

// MulBig returns the checked product of d and n.
// MulBig returns an error if n is negative or if the product does not
// fit within 192 bits.
func (d Decimal) MulBig(n *big.Int) (Decimal, error) {
	if n.Sign() < 0 {
		return Decimal{}, ErrMathOverflow.New("negative multiplier %v", n)
	}
	raw, ok := uint192FromBig(new(big.Int).Mul(d.raw.big(), n))
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q * %v does not fit in 192 bits", d, n)
	}
	return Decimal{raw: raw}, nil
}

// Quo64 returns the checked quotient of d and n, truncated towards zero.
// Quo64 returns an error if n is zero.
func (d Decimal) Quo64(n uint64) (Decimal, error) {
	raw, ok := d.raw.quo64(n)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("division of %q by zero", d)
	}
	return Decimal{raw: raw}, nil
}

// QuoBig returns the checked quotient of d and n, truncated towards zero.
// QuoBig returns an error if n is zero or negative.
func (d Decimal) QuoBig(n *big.Int) (Decimal, error) {
	switch n.Sign() {
	case 0:
		return Decimal{}, ErrMathOverflow.New("division of %q by zero", d)
	case -1:
		return Decimal{}, ErrMathOverflow.New("negative divisor %v", n)
	}
	raw, ok := uint192FromBig(new(big.Int).Quo(d.raw.big(), n))
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q / %v does not fit in 192 bits", d, n)
	}
	return Decimal{raw: raw}, nil
}

// Mul returns the checked product of d and e.
// The double-width intermediate product is computed in big scratch space
// and rescaled by 10^Scale, so the operation fails only if the final
// result does not fit within 192 bits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	z := new(big.Int).Mul(d.raw.big(), e.raw.big())
	z.Quo(z, bigWad)
	raw, ok := uint192FromBig(z)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q * %q does not fit in 192 bits", d, e)
	}
	return Decimal{raw: raw}, nil
}

// Quo returns the checked quotient of d and e, truncated towards zero.
// The dividend is pre-scaled by 10^Scale in big scratch space, so the
// operation fails only on division by zero or if the final result does
// not fit within 192 bits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrMathOverflow.New("division of %q by zero", d)
	}
	z := new(big.Int).Mul(d.raw.big(), bigWad)
	z.Quo(z, e.raw.big())
	raw, ok := uint192FromBig(z)
	if !ok {
		return Decimal{}, ErrMathOverflow.New("%q / %q does not fit in 192 bits", d, e)
	}
	return Decimal{raw: raw}, nil
}

// MulRate returns the checked product of d and r.
// Also see method [Decimal.Mul].
func (d Decimal) MulRate(r Rate) (Decimal, error) {
	return d.Mul(FromRate(r))
}

// QuoRate returns the checked quotient of d and r.
// Also see method [Decimal.Quo].
func (d Decimal) QuoRate(r Rate) (Decimal, error) {
	return d.Quo(FromRate(r))
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	return d.raw.cmp(e.raw)
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.raw.isZero()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of d: the integer part, a decimal point, and exactly
// [Scale] fractional digits. Trailing zeros are never trimmed and no sign
// is rendered.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return formatScaled(d.raw.big())
}

// formatScaled renders a raw scaled value as its fixed-point decimal form
// with exactly Scale fractional digits.
func formatScaled(z *big.Int) string {
	s := z.String()
	if len(s) <= Scale {
		return "0." + strings.Repeat("0", Scale-len(s)) + s
	}
	return s[:len(s)-Scale] + "." + s[len(s)-Scale:]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
