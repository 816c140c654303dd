package main

import (
	"context"
	"time"

	"breathe/tone"
)

// Phase is one half of a breath cycle: the caption shown next to the
// bar, the per-column fill delay, and the tone asset to trigger when
// the phase begins (empty when tones are off).
type Phase struct {
	Caption string
	Delay   time.Duration
	Asset   string
}

// BarRenderer is what the cycle driver needs from bar.Renderer.
type BarRenderer interface {
	Render(ctx context.Context, caption string, delay time.Duration) error
}

// runCycle alternates inhale and exhale strictly, forever. Playback is
// fired immediately before each bar begins rendering and never awaited;
// tone and bar durations are tuned independently via the latency
// offset, not hard-synchronized. The only exit is cancellation, which
// may land mid-fill. Returns the number of completed breath cycles.
func runCycle(ctx context.Context, r BarRenderer, p tone.Player, inhale, exhale Phase) int {
	phases := [2]Phase{inhale, exhale}
	cycles := 0
	for i := 0; ; i = 1 - i {
		if ctx.Err() != nil {
			return cycles
		}
		ph := phases[i]
		if ph.Asset != "" {
			p.Play(ph.Asset)
		}
		if err := r.Render(ctx, ph.Caption, ph.Delay); err != nil {
			return cycles
		}
		if i == 1 {
			cycles++
		}
	}
}
