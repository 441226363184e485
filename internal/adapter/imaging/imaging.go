package imaging

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.ImageEncoder = (*FileEncoder)(nil)

// FileEncoder reads a file and yields a base64 data URI on the
// result channel. On any failure the channel is closed without a
// value; the caller sees "operation never completed".
type FileEncoder struct{}

func NewFileEncoder() FileEncoder {
	return FileEncoder{}
}

func (e FileEncoder) EncodeFile(ctx context.Context, path string) <-chan string {
	c := make(chan string, 1)
	go e.encode(ctx, c, path)
	return c
}

func (e FileEncoder) encode(ctx context.Context, stream chan<- string, path string) {
	const op = "FileEncoder.encode"
	log := slog.With("op", op, "path", path)

	defer close(stream)

	if err := ctx.Err(); err != nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read image file", "err", err)
		return
	}

	stream <- "data:" + mimeByExt(path) + ";base64," +
		base64.StdEncoding.EncodeToString(data)
}

func mimeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
