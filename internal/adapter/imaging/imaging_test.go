package imaging

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFile(t *testing.T) {
	t.Run("YieldsDataURI", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pepper.png")
		content := []byte("not really a png")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		e := NewFileEncoder()
		stream := e.EncodeFile(context.Background(), path)

		select {
		case got, ok := <-stream:
			require.True(t, ok)
			want := "data:image/png;base64," +
				base64.StdEncoding.EncodeToString(content)
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("no result")
		}
	})

	t.Run("MissingFileClosesWithoutResult", func(t *testing.T) {
		e := NewFileEncoder()
		stream := e.EncodeFile(context.Background(), "/no/such/file.png")

		select {
		case _, ok := <-stream:
			assert.False(t, ok, "channel must close without a value")
		case <-time.After(time.Second):
			t.Fatal("channel never closed")
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e := NewFileEncoder()
		stream := e.EncodeFile(ctx, "whatever.png")

		_, ok := <-stream
		assert.False(t, ok)
	})
}

func TestMimeByExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "image/png"},
		{"a.JPG", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a.webp", "image/webp"},
		{"a.svg", "image/svg+xml"},
		{"a.bin", "application/octet-stream"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mimeByExt(tc.path), tc.path)
	}
}
