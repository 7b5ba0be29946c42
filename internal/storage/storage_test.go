package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"artist-portfolio/internal/pkg/apperror"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1717171717171)
	key := ObjectKey("7", ".JPG", now)
	assert.Regexp(t, regexp.MustCompile(`^7/1717171717171-[0-9a-f]{12}\.jpg$`), key)

	assert.NotEqual(t, key, ObjectKey("7", "jpg", now))
	assert.True(t, strings.HasSuffix(ObjectKey("7", "", now), ".bin"))
}

func TestValidKey(t *testing.T) {
	assert.True(t, validKey("1/123-abc.png"))
	assert.False(t, validKey(""))
	assert.False(t, validKey("/abs.png"))
	assert.False(t, validKey("1/../../etc/passwd"))
	assert.False(t, validKey("1//x.png"))
}

func TestLocalStoreUploadAndRemove(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStore(root, "http://localhost:8080/media/")
	require.NoError(t, err)

	key := "1/100-abc.png"
	require.NoError(t, s.Upload(ctx, key, strings.NewReader("png-bytes"), 9, "image/png"))

	data, err := os.ReadFile(filepath.Join(root, "1", "100-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "http://localhost:8080/media/1/100-abc.png", s.PublicURL(key))

	require.NoError(t, s.Remove(ctx, key))
	_, err = os.Stat(filepath.Join(root, "1", "100-abc.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// removing twice is fine
	require.NoError(t, s.Remove(ctx, key))
}

func TestLocalStoreNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)

	key := "1/100-abc.png"
	require.NoError(t, s.Upload(ctx, key, strings.NewReader("first"), 5, "image/png"))

	err = s.Upload(ctx, key, strings.NewReader("second"), 6, "image/png")
	assert.ErrorIs(t, err, apperror.ErrObjectExists)

	data, err := os.ReadFile(filepath.Join(s.Root(), "1", "100-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	entries, err := os.ReadDir(filepath.Join(s.Root(), "1"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)
	assert.Error(t, s.Upload(context.Background(), "../x.png", strings.NewReader("x"), 1, "image/png"))
	assert.Error(t, s.Remove(context.Background(), "../x.png"))
}

func TestIsPreconditionFailed(t *testing.T) {
	assert.True(t, isPreconditionFailed(&smithy.GenericAPIError{Code: "PreconditionFailed"}))
	assert.True(t, isPreconditionFailed(errors.Join(errors.New("wrapped"), &smithy.GenericAPIError{Code: "PreconditionFailed"})))
	assert.False(t, isPreconditionFailed(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isPreconditionFailed(errors.New("boom")))
}
