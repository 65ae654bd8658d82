/*
Package decimal implements immutable unsigned fixed-point decimal numbers
for deterministic financial computation.
Native floating point is unacceptable in this setting: results must be
bit-exact across machines, rounding must be explicit, and overflow must be
reported rather than wrapped.

# Representation

[Decimal] wraps a single 192-bit unsigned integer, interpreted as the
represented value multiplied by 10^[Scale] (10^18, commonly called a WAD).
[Rate] is the narrower sibling on the same scale, backed by 128 bits.
Both are plain comparable values: == is numeric equality, every operation
returns a new value, and instances can be freely copied and shared between
goroutines.

Negative values do not exist in this representation. A subtraction whose
true mathematical result would be negative fails instead of wrapping.

# Operations

Arithmetic is checked throughout. Each operation either returns a new value
or an error of the [ErrMathOverflow] class; nothing panics, wraps, or
saturates. Products and quotients of two scaled values are computed with a
double-width intermediate, so an operation fails only when the final
rescaled result does not fit the fixed width.

Conversions are provided from plain integers, percent, and basis points,
and back out through truncating conversions, plus three rounding modes to
native integers: half-up ([Decimal.Round64]), ceiling ([Decimal.Ceil64]),
and floor ([Decimal.Floor64]). Wide results are returned as [big.Int].

# Formatting

[Decimal.String] renders the canonical fixed-point form with exactly
[Scale] fractional digits and no sign. There is no string parsing; the raw
scaled value is the interchange representation.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package decimal
