package pace

import (
	"fmt"
	"time"
)

// PerColumn apportions a whole-second phase duration evenly across the
// bar's columns and returns the delay to hold between successive fills.
// The product columns*delay lands within one column's rounding error of
// the phase duration; no correction pass is applied.
func PerColumn(seconds, columns int) (time.Duration, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("phase duration must be a whole number of seconds > 0, got %d", seconds)
	}
	if columns == 0 {
		return 0, ErrDivideByZero
	}
	if columns < 0 {
		return 0, fmt.Errorf("column count must be positive, got %d", columns)
	}
	return time.Duration(seconds) * time.Second / time.Duration(columns), nil
}

// PerColumnString is the log-facing form of PerColumn: the per-column
// delay in seconds with FracDigits fractional digits.
func PerColumnString(seconds, columns int) (string, error) {
	if _, err := PerColumn(seconds, columns); err != nil {
		return "", err
	}
	return FixedDiv(uint64(seconds), uint64(columns))
}
