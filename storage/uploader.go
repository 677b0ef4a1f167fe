package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores a binary blob under folder/filename and returns the
// durable public URL it is served from.
type Uploader interface {
	Store(ctx context.Context, data []byte, folder, filename, contentType string) (string, error)
}

// Remover deletes a previously stored blob by its public URL. Providers
// implement it so a failed batch can be cleaned up best-effort.
type Remover interface {
	Remove(ctx context.Context, url string) error
}

// ObjectName builds a collision-free object name, keeping the original
// extension so the CDN serves the right content type.
func ObjectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
