package tone

import "sync"

// FakePlayer records Play calls so tests can verify that playback is
// triggered at the right point in each phase without audio hardware.
type FakePlayer struct {
	mu    sync.Mutex
	paths []string
}

func (f *FakePlayer) Play(path string) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
}

func (f *FakePlayer) Played() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}
