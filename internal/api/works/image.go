package works

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"artist-portfolio/internal/pkg/apperror"

	"github.com/h2non/filetype"
)

const MaxImageBytes = 10 << 20

const (
	MsgImageTooLarge = "Image must be 10 MB or smaller"
	MsgImageType     = "File must be an image (JPEG, PNG, GIF or WebP)"
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type imageFile struct {
	data        []byte
	ext         string
	contentType string
}

// readImage loads an uploaded file and checks its magic bytes, not its name.
func readImage(fh *multipart.FileHeader) (*imageFile, error) {
	if fh.Size == 0 {
		return nil, apperror.Validation(MsgImageRequired)
	}
	if fh.Size > MaxImageBytes {
		return nil, apperror.Validation(MsgImageTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "Could not read the uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxImageBytes+1))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "Could not read the uploaded file")
	}
	if len(data) > MaxImageBytes {
		return nil, apperror.Validation(MsgImageTooLarge)
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		return nil, apperror.Validation(MsgImageType)
	}

	return &imageFile{data: data, ext: kind.Extension, contentType: kind.MIME.Value}, nil
}

func (f *imageFile) reader() io.Reader { return bytes.NewReader(f.data) }

func (f *imageFile) size() int64 { return int64(len(f.data)) }

func (f *imageFile) String() string {
	return fmt.Sprintf("%s (%d bytes)", f.contentType, len(f.data))
}
