package main

import (
	"context"
	"sync"
	"testing"
	"time"
)

// scriptRenderer records rendered captions and cancels the run after a
// set number of phases, standing in for the interrupt signal.
type scriptRenderer struct {
	mu       sync.Mutex
	events   *[]string
	captions []string
	limit    int
	cancel   context.CancelFunc
}

func (r *scriptRenderer) Render(ctx context.Context, caption string, delay time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.captions = append(r.captions, caption)
	if r.events != nil {
		*r.events = append(*r.events, "render:"+caption)
	}
	n := len(r.captions)
	r.mu.Unlock()
	if n >= r.limit {
		r.cancel()
	}
	return nil
}

// eventPlayer appends Play calls to a shared event list so ordering
// against renders can be checked.
type eventPlayer struct {
	mu     sync.Mutex
	events *[]string
}

func (p *eventPlayer) Play(path string) {
	p.mu.Lock()
	*p.events = append(*p.events, "play:"+path)
	p.mu.Unlock()
}

func TestCycleAlternatesStrictly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &scriptRenderer{limit: 7, cancel: cancel}

	runCycle(ctx, r, &eventPlayer{events: new([]string)}, Phase{Caption: "IN "}, Phase{Caption: "OUT"})

	want := []string{"IN ", "OUT", "IN ", "OUT", "IN ", "OUT", "IN "}
	if len(r.captions) != len(want) {
		t.Fatalf("rendered %d phases, want %d", len(r.captions), len(want))
	}
	for i, c := range want {
		if r.captions[i] != c {
			t.Errorf("phase %d caption = %q, want %q", i, r.captions[i], c)
		}
	}
}

func TestCycleCountsCompletedCycles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &scriptRenderer{limit: 6, cancel: cancel}

	cycles := runCycle(ctx, r, &eventPlayer{events: new([]string)}, Phase{Caption: "IN "}, Phase{Caption: "OUT"})
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3 (six rendered phases)", cycles)
	}

	// Cancelling mid-cycle does not count the incomplete cycle
	ctx, cancel = context.WithCancel(context.Background())
	r = &scriptRenderer{limit: 5, cancel: cancel}
	cycles = runCycle(ctx, r, &eventPlayer{events: new([]string)}, Phase{Caption: "IN "}, Phase{Caption: "OUT"})
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2 (fifth phase left unfinished cycle)", cycles)
	}
}

func TestCyclePlaybackPrecedesRender(t *testing.T) {
	var events []string
	ctx, cancel := context.WithCancel(context.Background())
	r := &scriptRenderer{limit: 4, cancel: cancel, events: &events}
	p := &eventPlayer{events: &events}

	inhale := Phase{Caption: "IN ", Asset: "/tmp/in.flac"}
	exhale := Phase{Caption: "OUT", Asset: "/tmp/out.flac"}
	runCycle(ctx, r, p, inhale, exhale)

	want := []string{
		"play:/tmp/in.flac", "render:IN ",
		"play:/tmp/out.flac", "render:OUT",
		"play:/tmp/in.flac", "render:IN ",
		"play:/tmp/out.flac", "render:OUT",
	}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %q, want %q (full: %v)", i, events[i], want[i], events)
		}
	}
}

func TestCycleNoPlaybackWithoutAssets(t *testing.T) {
	var events []string
	ctx, cancel := context.WithCancel(context.Background())
	r := &scriptRenderer{limit: 4, cancel: cancel, events: &events}
	p := &eventPlayer{events: &events}

	runCycle(ctx, r, p, Phase{Caption: "IN "}, Phase{Caption: "OUT"})

	for _, ev := range events {
		if ev != "render:IN " && ev != "render:OUT" {
			t.Fatalf("unexpected event %q with tones disabled", ev)
		}
	}
}

func TestCycleExitsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &scriptRenderer{limit: 1000, cancel: func() {}}
	cycles := runCycle(ctx, r, &eventPlayer{events: new([]string)}, Phase{Caption: "IN "}, Phase{Caption: "OUT"})
	if cycles != 0 {
		t.Errorf("cycles = %d, want 0", cycles)
	}
	if len(r.captions) != 0 {
		t.Errorf("rendered %d phases after cancellation, want 0", len(r.captions))
	}
}
