package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the destinations of a Sink.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File is an optional append-only destination next to the console.
	File string
	// RunID is attached to every entry.
	RunID string
	// Console receives human-readable lines. Defaults to os.Stderr so that
	// stdout stays free for the report.
	Console io.Writer
}

// Sink writes pipeline diagnostics to a zerolog logger.
type Sink struct {
	log  zerolog.Logger
	file *os.File
}

// New creates a sink writing human-readable lines to the console and, if
// opts.File is set, JSON lines appended to that file.
func New(opts Options) (*Sink, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
	}

	var file *os.File
	if opts.File != "" {
		file, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		output = zerolog.MultiLevelWriter(output, file)
	}

	s := NewWithWriter(output, opts.RunID)
	s.log = s.log.Level(level)
	s.file = file
	return s, nil
}

// NewWithWriter creates a sink with a custom writer, logging at debug level.
func NewWithWriter(w io.Writer, runID string) *Sink {
	ctx := zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp()
	if runID != "" {
		ctx = ctx.Str("run_id", runID)
	}
	return &Sink{log: ctx.Logger()}
}

// Debug logs msg at debug level.
func (s *Sink) Debug(msg string) {
	s.log.Debug().Msg(msg)
}

// Info logs msg at info level.
func (s *Sink) Info(msg string) {
	s.log.Info().Msg(msg)
}

// Warn logs msg at warn level.
func (s *Sink) Warn(msg string) {
	s.log.Warn().Msg(msg)
}

// Error logs msg at error level with err attached.
func (s *Sink) Error(msg string, err error) {
	s.log.Error().Err(err).Msg(msg)
}

// Close releases the file destination, if any.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
