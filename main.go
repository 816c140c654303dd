package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"breathe/bar"
	"breathe/log"
	"breathe/pace"
	"breathe/shutdown"
	"breathe/tone"
)

var version = "dev"

// Caption cells are 3 visible columns; with " [" and "]" the bar
// occupies columns+6 terminal cells.
const (
	captionIn   = "IN "
	captionOut  = "OUT"
	barOverhead = 6
)

func main() {
	run()
}

func run() {
	inhaleFlag := flag.Int("inhale", 4, "Inhale duration in whole seconds")
	exhaleFlag := flag.Int("exhale", 4, "Exhale duration in whole seconds")
	columnsFlag := flag.Int("columns", 40, "Progress bar width in columns")
	toneFlag := flag.Bool("tone", false, "Play a pitch-sweep tone during each phase")
	latencyFlag := flag.Int("latency", 1000, "Milliseconds trimmed from each tone to cover playback startup")
	highFlag := flag.Float64("high", 600, "Tone frequency at full inhale (Hz)")
	lowFlag := flag.Float64("low", 300, "Tone frequency at full exhale (Hz)")
	noColorFlag := flag.Bool("nocolor", false, "Disable colored output")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("breathe %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}

	cfg := Config{
		InhaleSec: *inhaleFlag,
		ExhaleSec: *exhaleFlag,
		Columns:   *columnsFlag,
		Tone:      *toneFlag,
		LatencyMs: *latencyFlag,
		HighHz:    *highFlag,
		LowHz:     *lowFlag,
		NoColor:   *noColorFlag,
	}

	// Keep the bar inside the terminal so the CR overwrite stays on one line.
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > barOverhead+2 && cfg.Columns > w-barOverhead {
			log.Warnf("columns %d wider than terminal, clamping to %d", cfg.Columns, w-barOverhead)
			cfg.Columns = w - barOverhead
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Errorf("invalid configuration: %v", err)
		fatal(err)
	}

	inhaleDelay, err := pace.PerColumn(cfg.InhaleSec, cfg.Columns)
	if err != nil {
		fatal(err)
	}
	exhaleDelay, err := pace.PerColumn(cfg.ExhaleSec, cfg.Columns)
	if err != nil {
		fatal(err)
	}
	inhaleDelayStr, err := pace.PerColumnString(cfg.InhaleSec, cfg.Columns)
	if err != nil {
		fatal(err)
	}
	exhaleDelayStr, err := pace.PerColumnString(cfg.ExhaleSec, cfg.Columns)
	if err != nil {
		fatal(err)
	}

	log.SessionStart(cfg.Tone, cfg.InhaleSec, cfg.ExhaleSec, cfg.Columns)
	log.PhaseConfig("inhale", cfg.InhaleSec, cfg.Columns, inhaleDelayStr)
	log.PhaseConfig("exhale", cfg.ExhaleSec, cfg.Columns, exhaleDelayStr)

	inCaption, outCaption, fill := styles(cfg)
	inhale := Phase{Caption: inCaption, Delay: inhaleDelay}
	exhale := Phase{Caption: outCaption, Delay: exhaleDelay}

	var assets []string
	var cleanupOnce sync.Once
	runCleanup := func() {
		cleanupOnce.Do(func() { tone.Remove(assets...) })
	}

	// The interrupt must be caught before any asset exists: a signal
	// landing during synthesis cancels the context, the loop exits on
	// its first check, and the once-guarded cleanup below still runs.
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	cancelOnSignal(sigChan, cancel)

	if cfg.Tone {
		latency := time.Duration(cfg.LatencyMs) * time.Millisecond
		inhale.Asset = tone.AssetPath("in")
		exhale.Asset = tone.AssetPath("out")
		assets = []string{inhale.Asset, exhale.Asset}

		inDur := time.Duration(cfg.InhaleSec)*time.Second - latency
		outDur := time.Duration(cfg.ExhaleSec)*time.Second - latency
		if err := tone.Synthesize(inhale.Asset, inDur, cfg.LowHz, cfg.HighHz); err != nil {
			runCleanup()
			log.Errorf("tone synthesis failed: %v", err)
			fatal(fmt.Errorf("tone synthesis failed: %w", err))
		}
		if err := tone.Synthesize(exhale.Asset, outDur, cfg.HighHz, cfg.LowHz); err != nil {
			runCleanup()
			log.Errorf("tone synthesis failed: %v", err)
			fatal(fmt.Errorf("tone synthesis failed: %w", err))
		}
		log.ToneAsset("inhale", inhale.Asset, int(inDur.Milliseconds()), cfg.LowHz, cfg.HighHz)
		log.ToneAsset("exhale", exhale.Asset, int(outDur.Milliseconds()), cfg.HighHz, cfg.LowHz)
	}

	renderer := bar.New(os.Stdout, cfg.Columns)
	renderer.Fill = fill
	cycles := runCycle(ctx, renderer, tone.NewPlayer(), inhale, exhale)

	// Interrupt mid-render is the normal exit; no further output.
	runCleanup()
	log.SessionEnd(cycles)
	log.Close()
}

// cancelOnSignal cancels the run when an external interrupt arrives.
// Cleanup itself stays on the main goroutine, after the loop returns,
// so asset removal never races an in-flight synthesis.
func cancelOnSignal(sig <-chan os.Signal, cancel context.CancelFunc) {
	go func() {
		<-sig
		cancel()
	}()
}

func fatal(err error) {
	log.Close()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// styles returns the phase captions and fill cell, colored unless the
// user opted out or stdout is not a terminal.
func styles(cfg Config) (inCaption, outCaption, fill string) {
	if cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return captionIn, captionOut, bar.DefaultFill
	}
	inStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	outStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return inStyle.Render(captionIn), outStyle.Render(captionOut), fillStyle.Render(bar.DefaultFill)
}
