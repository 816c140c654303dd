//go:build !linux

package tone

// No audio backend wired up outside Linux yet; the pacer still runs,
// silently.
type nopPlayer struct{}

func NewPlayer() Player { return nopPlayer{} }

func (nopPlayer) Play(string) {}
