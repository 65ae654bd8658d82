package decimal

import (
	"fmt"
	"math/big"
)

// MustFromBig is like [FromBig] but panics if computing error.
// It simplifies safe initialization of global variables holding decimals.
func MustFromBig(n *big.Int) Decimal {
	d, err := FromBig(n)
	if err != nil {
		panic(fmt.Sprintf("MustFromBig(%v) failed: %v", n, err))
	}
	return d
}

// MustFromScaled is like [FromScaled] but panics if computing error.
func MustFromScaled(raw *big.Int) Decimal {
	d, err := FromScaled(raw)
	if err != nil {
		panic(fmt.Sprintf("MustFromScaled(%v) failed: %v", raw, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}
