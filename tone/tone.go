// Package tone synthesizes the breathing guide tones and plays them
// back. A tone is a linear pitch sweep with a short fade-in, rendered
// once at startup into a transient FLAC asset that is reused for every
// cycle and deleted on shutdown.
package tone

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

const (
	SampleRate = 44100

	volume  = 0.5
	fadeIn  = 50 * time.Millisecond
	maxAmpl = 32767
)

// Player plays an audio asset asynchronously. Play must not block the
// caller and must swallow playback failures; the render loop never
// waits on audio.
type Player interface {
	Play(path string)
}

// Sweep generates mono 16-bit samples for a linear pitch sweep from f0
// to f1 over dur, with a linear fade-in to avoid a click at onset.
func Sweep(dur time.Duration, f0, f1 float64) []int16 {
	n := int(float64(SampleRate) * dur.Seconds())
	fade := int(float64(SampleRate) * fadeIn.Seconds())
	samples := make([]int16, n)
	var phase float64
	for i := 0; i < n; i++ {
		f := f0 + (f1-f0)*float64(i)/float64(n)
		phase += 2 * math.Pi * f / SampleRate
		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		}
		samples[i] = int16(math.Sin(phase) * maxAmpl * volume * env)
	}
	return samples
}

// Synthesize renders a sweep and writes it to path as a FLAC asset.
func Synthesize(path string, dur time.Duration, f0, f1 float64) error {
	if dur <= 0 {
		return fmt.Errorf("tone duration must be positive, got %v", dur)
	}
	if f0 <= 0 || f1 <= 0 {
		return fmt.Errorf("tone frequencies must be positive, got %.0f and %.0f", f0, f1)
	}
	return writeFLAC(path, Sweep(dur, f0, f1))
}

// AssetPath returns a process-unique transient location for a named
// asset, so concurrent runs on the same host never collide.
func AssetPath(name string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("breathe_%d_%s.flac", os.Getpid(), name))
}

// Remove deletes transient assets, best effort. Already-removed assets
// are not an error; cleanup must never block process exit.
func Remove(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}
