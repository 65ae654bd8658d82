package decimal

import (
	"math/big"
	"math/bits"
)

// uint192 is a 192-bit unsigned integer stored as three 64-bit limbs,
// least significant limb first.
type uint192 struct {
	lo, mid, hi uint64
}

// maxUint192 is the maximum value of uint192, which is equal to (2^192 - 1).
var maxUint192 = uint192{lo: ^uint64(0), mid: ^uint64(0), hi: ^uint64(0)}

func uint192FromUint64(x uint64) uint192 {
	return uint192{lo: x}
}

// add calculates x + y and checks overflow.
func (x uint192) add(y uint192) (z uint192, ok bool) {
	var c uint64
	z.lo, c = bits.Add64(x.lo, y.lo, 0)
	z.mid, c = bits.Add64(x.mid, y.mid, c)
	z.hi, c = bits.Add64(x.hi, y.hi, c)
	if c != 0 {
		return uint192{}, false
	}
	return z, true
}

// sub calculates x - y and checks underflow.
func (x uint192) sub(y uint192) (z uint192, ok bool) {
	var b uint64
	z.lo, b = bits.Sub64(x.lo, y.lo, 0)
	z.mid, b = bits.Sub64(x.mid, y.mid, b)
	z.hi, b = bits.Sub64(x.hi, y.hi, b)
	if b != 0 {
		return uint192{}, false
	}
	return z, true
}

// mul64 calculates x * y and checks overflow.
func (x uint192) mul64(y uint64) (z uint192, ok bool) {
	h0, l0 := bits.Mul64(x.lo, y)
	h1, l1 := bits.Mul64(x.mid, y)
	h2, l2 := bits.Mul64(x.hi, y)
	var c uint64
	z.lo = l0
	z.mid, c = bits.Add64(l1, h0, 0)
	z.hi, c = bits.Add64(l2, h1, c)
	// h2 is at most 2^64 - 2, so h2 + c cannot wrap.
	if h2+c != 0 {
		return uint192{}, false
	}
	return z, true
}

// quo64 calculates ⌊x / y⌋ and checks division by zero.
func (x uint192) quo64(y uint64) (z uint192, ok bool) {
	if y == 0 {
		return uint192{}, false
	}
	var r uint64
	z.hi, r = bits.Div64(0, x.hi, y)
	z.mid, r = bits.Div64(r, x.mid, y)
	z.lo, _ = bits.Div64(r, x.lo, y)
	return z, true
}

// cmp compares x and y and returns -1, 0, or +1.
func (x uint192) cmp(y uint192) int {
	switch {
	case x.hi != y.hi:
		return cmp64(x.hi, y.hi)
	case x.mid != y.mid:
		return cmp64(x.mid, y.mid)
	default:
		return cmp64(x.lo, y.lo)
	}
}

func (x uint192) isZero() bool {
	return x.lo == 0 && x.mid == 0 && x.hi == 0
}

// uint64 converts x to uint64 and checks overflow.
func (x uint192) uint64() (z uint64, ok bool) {
	if x.mid != 0 || x.hi != 0 {
		return 0, false
	}
	return x.lo, true
}

// uint128 narrows x to uint128 and checks overflow.
func (x uint192) uint128() (z uint128, ok bool) {
	if x.hi != 0 {
		return uint128{}, false
	}
	return uint128{lo: x.lo, hi: x.mid}, true
}

// big converts x to *big.Int.
// The big form serves as scratch space for double-width intermediate
// results and for decimal digit rendering.
func (x uint192) big() *big.Int {
	z := new(big.Int).SetUint64(x.hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(x.mid))
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(x.lo))
	return z
}

// uint192FromBig converts z to uint192.
// It checks that z is not negative and fits within 192 bits.
func uint192FromBig(z *big.Int) (x uint192, ok bool) {
	if z.Sign() < 0 || z.BitLen() > 192 {
		return uint192{}, false
	}
	var buf [24]byte
	z.FillBytes(buf[:])
	x.hi = beUint64(buf[0:8])
	x.mid = beUint64(buf[8:16])
	x.lo = beUint64(buf[16:24])
	return x, true
}

// uint128 is a 128-bit unsigned integer stored as two 64-bit limbs,
// least significant limb first.
type uint128 struct {
	lo, hi uint64
}

// maxUint128 is the maximum value of uint128, which is equal to (2^128 - 1).
var maxUint128 = uint128{lo: ^uint64(0), hi: ^uint64(0)}

func uint128FromUint64(x uint64) uint128 {
	return uint128{lo: x}
}

// add calculates x + y and checks overflow.
func (x uint128) add(y uint128) (z uint128, ok bool) {
	var c uint64
	z.lo, c = bits.Add64(x.lo, y.lo, 0)
	z.hi, c = bits.Add64(x.hi, y.hi, c)
	if c != 0 {
		return uint128{}, false
	}
	return z, true
}

// sub calculates x - y and checks underflow.
func (x uint128) sub(y uint128) (z uint128, ok bool) {
	var b uint64
	z.lo, b = bits.Sub64(x.lo, y.lo, 0)
	z.hi, b = bits.Sub64(x.hi, y.hi, b)
	if b != 0 {
		return uint128{}, false
	}
	return z, true
}

// mul64 calculates x * y and checks overflow.
func (x uint128) mul64(y uint64) (z uint128, ok bool) {
	h0, l0 := bits.Mul64(x.lo, y)
	h1, l1 := bits.Mul64(x.hi, y)
	var c uint64
	z.lo = l0
	z.hi, c = bits.Add64(l1, h0, 0)
	if h1+c != 0 {
		return uint128{}, false
	}
	return z, true
}

// full64 calculates the full 128-bit product of two uint64 values,
// which never overflows.
func full64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{lo: lo, hi: hi}
}

// quo64 calculates ⌊x / y⌋ and checks division by zero.
func (x uint128) quo64(y uint64) (z uint128, ok bool) {
	if y == 0 {
		return uint128{}, false
	}
	var r uint64
	z.hi, r = bits.Div64(0, x.hi, y)
	z.lo, _ = bits.Div64(r, x.lo, y)
	return z, true
}

// cmp compares x and y and returns -1, 0, or +1.
func (x uint128) cmp(y uint128) int {
	if x.hi != y.hi {
		return cmp64(x.hi, y.hi)
	}
	return cmp64(x.lo, y.lo)
}

func (x uint128) isZero() bool {
	return x.lo == 0 && x.hi == 0
}

// uint64 converts x to uint64 and checks overflow.
func (x uint128) uint64() (z uint64, ok bool) {
	if x.hi != 0 {
		return 0, false
	}
	return x.lo, true
}

// uint192 widens x to uint192, which never overflows.
func (x uint128) uint192() uint192 {
	return uint192{lo: x.lo, mid: x.hi}
}

// big converts x to *big.Int.
func (x uint128) big() *big.Int {
	z := new(big.Int).SetUint64(x.hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(x.lo))
	return z
}

// uint128FromBig converts z to uint128.
// It checks that z is not negative and fits within 128 bits.
func uint128FromBig(z *big.Int) (x uint128, ok bool) {
	if z.Sign() < 0 || z.BitLen() > 128 {
		return uint128{}, false
	}
	var buf [16]byte
	z.FillBytes(buf[:])
	x.hi = beUint64(buf[0:8])
	x.lo = beUint64(buf[8:16])
	return x, true
}

func cmp64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// beUint64 decodes a big-endian uint64 from an 8-byte slice.
func beUint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}
