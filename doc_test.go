package decimal_test

import (
	"fmt"

	decimal "github.com/conloter/decimals"
)

// Accrue one period of interest on a principal of 1000 at a 5% rate.
func Example() {
	principal := decimal.FromUint64(1000)
	rate := decimal.RateFromPercent(5)

	interest, err := principal.MulRate(rate)
	if err != nil {
		panic(err)
	}
	total, err := principal.Add(interest)
	if err != nil {
		panic(err)
	}

	fmt.Println(interest)
	fmt.Println(total)
	// Output:
	// 50.000000000000000000
	// 1050.000000000000000000
}

func ExampleFromPercent() {
	fmt.Println(decimal.FromPercent(15))
	// Output: 0.150000000000000000
}

func ExampleFromBps() {
	fmt.Println(decimal.FromBps(30))
	// Output: 0.003000000000000000
}

func ExampleDecimal_Quo() {
	d, err := decimal.FromUint64(1).Quo(decimal.FromUint64(3))
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 0.333333333333333333
}

func ExampleDecimal_Round64() {
	d := decimal.FromScaled64(1_500_000_000_000_000_000) // 1.5
	n, err := d.Round64()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 2
}

func ExampleDecimal_Floor64() {
	d := decimal.FromScaled64(1_500_000_000_000_000_000) // 1.5
	n, err := d.Floor64()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 1
}

func ExampleDecimal_Sub() {
	_, err := decimal.Zero().Sub(decimal.One())
	fmt.Println(decimal.ErrMathOverflow.Has(err))
	// Output: true
}
