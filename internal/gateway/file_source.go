package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"transaction-merger/internal/domain"
)

// FileSourceOpener implements the SourceOpener interface for local files.
type FileSourceOpener struct{}

// NewFileSourceOpener creates a new opener instance.
func NewFileSourceOpener() *FileSourceOpener {
	return &FileSourceOpener{}
}

// Open opens the file at path for reading. A path that does not exist
// yields an error wrapping domain.ErrSourceMissing.
func (o *FileSourceOpener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("%w %s: %v", domain.ErrSourceRead, path, err)
	}

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%w %s: is a directory", domain.ErrSourceRead, path)
	}
	return file, nil
}
