package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStore keeps uploaded artwork images.
type ObjectStore interface {
	// Upload writes a new object. It never overwrites: an existing key
	// yields apperror.ErrObjectExists.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
	// Remove deletes the object; a missing object is not an error.
	Remove(ctx context.Context, key string) error
}

// ObjectKey builds "<owner>/<unixMillis>-<random>.<ext>".
func ObjectKey(owner string, ext string, now time.Time) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "bin"
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/%d-%s.%s", owner, now.UnixMilli(), random, ext)
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
