package bigint_test

import (
	"fmt"

	"github.com/agbru/bigmul/internal/bigint"
)

func ExampleMul() {
	a := bigint.MustParse("-123456789012345678901234567890")
	b := bigint.MustParse("987654321098765432109876543210")

	p := bigint.Mul(a, b)
	fmt.Println(p.Sign(), p)
	// Output:
	// Negative -121932631137021795226185032733622923332237463801111263526900
}

func ExampleMulDigit() {
	x := bigint.MustParse("18446744073709551615")
	fmt.Println(bigint.MulDigit(x, 10))
	fmt.Println(bigint.MulDigit(x, 0).IsZero())
	// Output:
	// 184467440737095516150
	// true
}
