package decimal

import (
	"math/big"
)

// Rate is the smaller sibling of [Decimal]: a fixed-point number on the
// same 18-digit scale, backed by a 128-bit unsigned integer.
// It is intended for ratio quantities such as interest or exchange rates,
// where the narrower width is sufficient.
//
// Rate shares the value semantics of [Decimal]: comparable, immutable,
// safe for concurrent use.
type Rate struct {
	raw uint128 // the scaled value, interpreted as raw / 10^Scale
}

// RateZero returns the rate value 0.
func RateZero() Rate {
	return Rate{}
}

// RateOne returns the rate value 1.
func RateOne() Rate {
	return Rate{raw: uint128FromUint64(wad)}
}

// RateMax returns the largest representable rate,
// which is equal to (2^128 - 1) / 10^Scale.
func RateMax() Rate {
	return Rate{raw: maxUint128}
}

// RateFromUint64 returns a rate equal to n.
// The scaled value n * 10^Scale is at most 2^124, so the conversion
// cannot overflow.
func RateFromUint64(n uint64) Rate {
	return Rate{raw: full64(n, wad)}
}

// RateFromPercent returns a rate equal to p / 100.
func RateFromPercent(p uint64) Rate {
	return Rate{raw: full64(p, percentScaler)}
}

// RateFromBps returns a rate equal to b / 10000,
// where b is a number of basis points.
func RateFromBps(b uint64) Rate {
	return Rate{raw: full64(b, bpsScaler)}
}

// RateFromScaled64 returns a rate whose scaled value is exactly raw.
func RateFromScaled64(raw uint64) Rate {
	return Rate{raw: uint128FromUint64(raw)}
}

// RateFromScaled returns a rate whose scaled value is exactly raw.
// RateFromScaled returns an error if raw is negative or does not fit
// within 128 bits.
func RateFromScaled(raw *big.Int) (Rate, error) {
	r, ok := uint128FromBig(raw)
	if !ok {
		return Rate{}, ErrMathOverflow.New("scaled value %v does not fit in 128 bits", raw)
	}
	return Rate{raw: r}, nil
}

// Scaled returns the scaled value of r, that is, r * 10^Scale.
// This is the embedding contract consumed by [FromRate].
func (r Rate) Scaled() *big.Int {
	return r.raw.big()
}

// Scaled64 returns the scaled value of r as a uint64.
// Scaled64 returns an error if the scaled value does not fit in 64 bits.
func (r Rate) Scaled64() (uint64, error) {
	n, ok := r.raw.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("scaled value of %q does not fit in uint64", r)
	}
	return n, nil
}

// Percent64 returns r expressed in percent, truncated towards zero.
// Percent64 returns an error if the result does not fit in 64 bits.
func (r Rate) Percent64() (uint64, error) {
	q, _ := r.raw.quo64(percentScaler)
	n, ok := q.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("%q percent does not fit in uint64", r)
	}
	return n, nil
}

// Bps64 returns r expressed in basis points, truncated towards zero.
// Bps64 returns an error if the result does not fit in 64 bits.
func (r Rate) Bps64() (uint64, error) {
	q, _ := r.raw.quo64(bpsScaler)
	n, ok := q.uint64()
	if !ok {
		return 0, ErrMathOverflow.New("%q bps does not fit in uint64", r)
	}
	return n, nil
}

// Round64 returns r rounded to the nearest integer, with ties rounded up.
// Round64 returns an error if the result does not fit in 64 bits.
func (r Rate) Round64() (uint64, error) {
	z := r.raw.big()
	z.Add(z, bigHalfWad)
	z.Quo(z, bigWad)
	if !z.IsUint64() {
		return 0, ErrMathOverflow.New("%q rounded does not fit in uint64", r)
	}
	return z.Uint64(), nil
}

// Add returns the checked sum of r and s.
// Add returns an error if the sum does not fit within 128 bits.
func (r Rate) Add(s Rate) (Rate, error) {
	raw, ok := r.raw.add(s.raw)
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q + %q does not fit in 128 bits", r, s)
	}
	return Rate{raw: raw}, nil
}

// Sub returns the checked difference of r and s.
// Sub returns an error if s is greater than r.
func (r Rate) Sub(s Rate) (Rate, error) {
	raw, ok := r.raw.sub(s.raw)
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q - %q is negative", r, s)
	}
	return Rate{raw: raw}, nil
}

// Mul64 returns the checked product of r and n.
func (r Rate) Mul64(n uint64) (Rate, error) {
	raw, ok := r.raw.mul64(n)
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q * %v does not fit in 128 bits", r, n)
	}
	return Rate{raw: raw}, nil
}

// Quo64 returns the checked quotient of r and n, truncated towards zero.
// Quo64 returns an error if n is zero.
func (r Rate) Quo64(n uint64) (Rate, error) {
	raw, ok := r.raw.quo64(n)
	if !ok {
		return Rate{}, ErrMathOverflow.New("division of %q by zero", r)
	}
	return Rate{raw: raw}, nil
}

// Mul returns the checked product of r and s.
// The double-width intermediate product is computed in big scratch space
// and rescaled by 10^Scale, so the operation fails only if the final
// result does not fit within 128 bits.
func (r Rate) Mul(s Rate) (Rate, error) {
	z := new(big.Int).Mul(r.raw.big(), s.raw.big())
	z.Quo(z, bigWad)
	raw, ok := uint128FromBig(z)
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q * %q does not fit in 128 bits", r, s)
	}
	return Rate{raw: raw}, nil
}

// Quo returns the checked quotient of r and s, truncated towards zero.
// The dividend is pre-scaled by 10^Scale in big scratch space.
// Quo returns an error on division by zero or if the final result does
// not fit within 128 bits.
func (r Rate) Quo(s Rate) (Rate, error) {
	if s.IsZero() {
		return Rate{}, ErrMathOverflow.New("division of %q by zero", r)
	}
	z := new(big.Int).Mul(r.raw.big(), bigWad)
	z.Quo(z, s.raw.big())
	raw, ok := uint128FromBig(z)
	if !ok {
		return Rate{}, ErrMathOverflow.New("%q / %q does not fit in 128 bits", r, s)
	}
	return Rate{raw: raw}, nil
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
func (r Rate) Cmp(s Rate) int {
	return r.raw.cmp(s.raw)
}

// IsZero returns true if r == 0.
func (r Rate) IsZero() bool {
	return r.raw.isZero()
}

// String implements the [fmt.Stringer] interface.
// The format matches [Decimal.String]: exactly [Scale] fractional digits,
// no trimming, no sign.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rate) String() string {
	return formatScaled(r.raw.big())
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Rate.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
