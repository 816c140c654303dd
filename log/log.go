package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}

	// Priority 2: BREATHE_LOG_PATH environment variable
	envPath := os.Getenv("BREATHE_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// PhaseConfig records the derived pacing for one phase: whole-second
// duration, column count, and the per-column delay as the exact decimal
// string shown in diagnostics.
func PhaseConfig(phase string, seconds, columns int, delay string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("phase", phase).
		Int("seconds", seconds).
		Int("columns", columns).
		Str("delay_s", delay).
		Msg("phase_config")
}

// ToneAsset records a synthesized transient asset and its sweep.
func ToneAsset(phase, path string, durMs int, f0, f1 float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("phase", phase).
		Str("asset", path).
		Int("dur_ms", durMs).
		Float64("from_hz", f0).
		Float64("to_hz", f1).
		Msg("tone_asset")
}

func SessionStart(tone bool, inhale, exhale, columns int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Bool("tone", tone).
		Int("inhale_s", inhale).
		Int("exhale_s", exhale).
		Int("columns", columns).
		Msg("session_start")
}

func SessionEnd(cycles int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("cycles", cycles).
		Msg("session_end")
}
