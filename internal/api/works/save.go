package works

import (
	"context"
	"errors"
	"time"

	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/storage"

	"github.com/sirupsen/logrus"
)

/*
	Save flow
	---------
	1. upload the image (never overwrites)
	2. write the row
	3. write failed  -> remove the new object
	   write ok      -> remove the object it replaced
	Removal is best effort: failures are logged, never returned.
*/

const cleanupTimeout = 10 * time.Second

type storedImage struct {
	key string
	url string
}

func (h *Handler) storeImage(ctx context.Context, owner string, img *imageFile) (storedImage, error) {
	key := storage.ObjectKey(owner, img.ext, h.now())
	if err := h.store.Upload(ctx, key, img.reader(), img.size(), img.contentType); err != nil {
		if errors.Is(err, apperror.ErrObjectExists) {
			return storedImage{}, err
		}
		return storedImage{}, apperror.Wrap(err, apperror.ErrCodeStorage, "Failed to upload image")
	}
	logger.Log.WithFields(logrus.Fields{"key": key, "image": img.String()}).Debug("image stored")
	return storedImage{key: key, url: h.store.PublicURL(key)}, nil
}

// removeObject outlives the request so a disconnected client still gets cleanup.
func (h *Handler) removeObject(ctx context.Context, key, reason string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := h.store.Remove(ctx, key); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{"key": key, "reason": reason}).Warn("failed to remove stored image")
		return
	}
	logger.Log.WithFields(logrus.Fields{"key": key, "reason": reason}).Info("removed stored image")
}

func (h *Handler) createArtwork(ctx context.Context, owner string, fields artworkFields, img *imageFile) (works.Artwork, error) {
	stored, err := h.storeImage(ctx, owner, img)
	if err != nil {
		return works.Artwork{}, err
	}

	a := works.Artwork{ImageURL: &stored.url, ImagePath: &stored.key}
	fields.apply(&a)

	if err := h.artworks.Create(ctx, &a); err != nil {
		h.removeObject(ctx, stored.key, "insert failed")
		return works.Artwork{}, err
	}
	return a, nil
}

// updateArtwork applies fields to existing. img replaces the stored image;
// without it imageURL is kept as typed.
func (h *Handler) updateArtwork(ctx context.Context, owner string, existing works.Artwork, fields artworkFields, img *imageFile, imageURL string) (works.Artwork, error) {
	updated := existing
	fields.apply(&updated)

	var uploaded *storedImage
	if img != nil {
		stored, err := h.storeImage(ctx, owner, img)
		if err != nil {
			return works.Artwork{}, err
		}
		uploaded = &stored
		updated.ImageURL = &stored.url
		updated.ImagePath = &stored.key
	} else if existing.ImageURL == nil || *existing.ImageURL != imageURL {
		// a typed URL points outside our bucket
		updated.ImageURL = &imageURL
		updated.ImagePath = nil
	}

	if err := h.artworks.Update(ctx, &updated); err != nil {
		if uploaded != nil {
			h.removeObject(ctx, uploaded.key, "update failed")
		}
		return works.Artwork{}, err
	}

	if old := existing.ImagePath; old != nil && *old != "" && (updated.ImagePath == nil || *updated.ImagePath != *old) {
		h.removeObject(ctx, *old, "replaced")
	}
	return updated, nil
}
