package main

import "fmt"

// Config is resolved once from flags at startup and passed by value;
// nothing reads ambient settings after this point.
type Config struct {
	InhaleSec int
	ExhaleSec int
	Columns   int

	Tone      bool
	LatencyMs int
	HighHz    float64
	LowHz     float64

	NoColor bool
}

func (c Config) Validate() error {
	if c.InhaleSec <= 0 {
		return fmt.Errorf("inhale duration must be a whole number of seconds > 0, got %d", c.InhaleSec)
	}
	if c.ExhaleSec <= 0 {
		return fmt.Errorf("exhale duration must be a whole number of seconds > 0, got %d", c.ExhaleSec)
	}
	if c.Columns < 2 {
		return fmt.Errorf("columns must be at least 2, got %d", c.Columns)
	}
	if c.LatencyMs < 0 {
		return fmt.Errorf("tone latency must not be negative, got %d ms", c.LatencyMs)
	}
	if c.Tone {
		if c.HighHz <= 0 || c.LowHz <= 0 {
			return fmt.Errorf("tone frequencies must be positive, got high=%.0f low=%.0f", c.HighHz, c.LowHz)
		}
		shortest := min(c.InhaleSec, c.ExhaleSec) * 1000
		if c.LatencyMs >= shortest {
			return fmt.Errorf("tone latency %d ms must be shorter than the shortest phase (%d ms)", c.LatencyMs, shortest)
		}
	}
	return nil
}
