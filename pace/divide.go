package pace

import (
	"errors"
	"fmt"
)

// FracDigits is the number of fractional digits FixedDiv produces.
const FracDigits = 5

const scale = 100000 // 10^FracDigits

var ErrDivideByZero = errors.New("division by zero")

// FixedDiv divides num by den using only integer arithmetic and returns
// the quotient as a decimal string with exactly FracDigits fractional
// digits, truncated (never rounded). Used for the delay strings written
// to the diagnostics log so they are exact and reproducible.
func FixedDiv(num, den uint64) (string, error) {
	if den == 0 {
		return "", ErrDivideByZero
	}
	scaled := num * scale / den
	return fmt.Sprintf("%d.%05d", scaled/scale, scaled%scale), nil
}
