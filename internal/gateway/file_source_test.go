package gateway

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"transaction-merger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSourceOpener_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions1.csv")
	require.NoError(t, os.WriteFile(path, []byte("Bob,45.50,01-03-2020\n"), 0644))

	opener := NewFileSourceOpener()
	ctx := context.Background()

	t.Run("existing file", func(t *testing.T) {
		rc, err := opener.Open(ctx, path)
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, "Bob,45.50,01-03-2020\n", string(data))
		assert.NoError(t, rc.Close())
	})

	t.Run("file not found", func(t *testing.T) {
		rc, err := opener.Open(ctx, filepath.Join(dir, "nonexistent_file.csv"))
		assert.Nil(t, rc)
		assert.True(t, errors.Is(err, domain.ErrSourceMissing), "got %v", err)
	})

	t.Run("directory", func(t *testing.T) {
		rc, err := opener.Open(ctx, dir)
		assert.Nil(t, rc)
		assert.True(t, errors.Is(err, domain.ErrSourceRead), "got %v", err)
		assert.False(t, errors.Is(err, domain.ErrSourceMissing))
	})
}
