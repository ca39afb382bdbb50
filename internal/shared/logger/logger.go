package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Options configures the process-wide logger.
type Options struct {
	Level      string
	Format     string // "console" or "json"
	OutputPath string // "stdout", "stderr" or a file path
	// SourceLevel is the lowest level whose records carry a source location.
	SourceLevel slog.Level
}

var (
	mu      sync.Mutex
	current *slog.Logger
	level   = new(slog.LevelVar)
)

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init builds the process-wide logger and installs it as the slog default.
func Init(opts Options) error {
	w, err := openOutput(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("open log output: %w", err)
	}
	level.Set(ParseLevel(opts.Level))

	var base slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = newConsoleHandler(w, level)
	}

	l := slog.New(NewSourceHandler(base, opts.SourceLevel))
	mu.Lock()
	current = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newConsoleHandler(w io.Writer, lvl slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Get returns the process-wide logger, creating a console logger on first
// use when Init has not run.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = slog.New(NewSourceHandler(newConsoleHandler(os.Stdout, level), slog.LevelWarn))
		slog.SetDefault(current)
	}
	return current
}

// WithComponent returns the process-wide logger tagged with a component name.
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
