// Package bar renders a fixed-width bracketed progress bar on a single
// terminal line, paced by a per-column delay. It relies only on
// carriage-return repositioning, never full-screen control.
package bar

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

const DefaultFill = "="

// Renderer draws one phase's bar. Out is typically os.Stdout; Sleep can
// be replaced in tests to run without real time passing.
type Renderer struct {
	Out     io.Writer
	Columns int
	Fill    string // single display cell; may carry ANSI styling
	Sleep   func(ctx context.Context, d time.Duration) error
}

func New(out io.Writer, columns int) *Renderer {
	return &Renderer{Out: out, Columns: columns, Fill: DefaultFill}
}

// Render draws the caption and the full empty outline first, so the
// bar's total width is fixed before any fill appears, then returns the
// cursor to the start of the line and overwrites column by column,
// holding delay after each fill. The trailing bracket drawn by the
// outline is never erased. The delay is held after every fill, the
// last one included, so a phase's wall time stays columns*delay. Blocks
// for the whole phase; returns ctx.Err() if cancelled mid-fill, leaving
// a partial bar on screen.
func (r *Renderer) Render(ctx context.Context, caption string, delay time.Duration) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	fill := r.Fill
	if fill == "" {
		fill = DefaultFill
	}

	fmt.Fprintf(r.Out, "%s [%s]\r%s [", caption, strings.Repeat(" ", r.Columns), caption)
	for i := 0; i < r.Columns; i++ {
		fmt.Fprint(r.Out, fill)
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
	fmt.Fprint(r.Out, "\n")
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
