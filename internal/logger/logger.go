package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where and how records are written.
type Options struct {
	// Console receives every record; defaults to stdout.
	Console io.Writer
	// FilePath, when set, is opened in append mode and receives a copy of every record.
	FilePath string
	// Level is a zerolog level name; unknown names fall back to info.
	Level string
	// Format is "json" (default) or "console" for human readable lines.
	Format string
}

var (
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	once         sync.Once
)

// InitLogging configures the global logger. Only the first call has an effect.
func InitLogging(opts Options) {
	once.Do(func() {
		console := opts.Console
		if console == nil {
			console = os.Stdout
		}
		if strings.EqualFold(opts.Format, "console") {
			console = zerolog.ConsoleWriter{Out: console, NoColor: true, TimeFormat: time.RFC3339}
		}
		writers := []io.Writer{console}

		if opts.FilePath != "" {
			file, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// the logger is not ready yet
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(parseLevel(opts.Level)).
			With().Timestamp().Logger()
		log.Logger = globalLogger
	})
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithLogger returns a context carrying the current logger enriched with fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	// zerolog.Ctx hands back a disabled logger when ctx has none
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs at error level. A single error argument is attached as the
// "error" field instead of being formatted into msg.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	l := getLogger(ctx)
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
	}
	if len(args) == 0 {
		l.Error().Msg(msg)
		return
	}
	l.Error().Msgf(msg, args...)
}
