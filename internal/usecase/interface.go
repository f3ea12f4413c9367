package usecase

import (
	"context"
	"io"
)

// SourceOpener opens an input source by its identifier.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type SourceOpener interface {
	// Open returns an error wrapping domain.ErrSourceMissing when the source does not exist.
	Open(ctx context.Context, source string) (io.ReadCloser, error)
}

// DiagnosticSink receives severity-tagged messages from the pipeline.
type DiagnosticSink interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string, err error)
}
