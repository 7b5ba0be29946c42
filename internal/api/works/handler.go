package works

import (
	"fmt"
	"net/http"
	"time"

	"artist-portfolio/internal/api/respond"
	"artist-portfolio/internal/app/http/middleware"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/repository"
	"artist-portfolio/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	artworks repository.Artworks
	store    storage.ObjectStore
	prices   *PriceFormatter
	now      func() time.Time
}

func NewHandler(artworks repository.Artworks, store storage.ObjectStore, prices *PriceFormatter) *Handler {
	return &Handler{artworks: artworks, store: store, prices: prices, now: time.Now}
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint(middleware.KeyUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func (h *Handler) loadBySlug(c *gin.Context) (works.Artwork, bool) {
	id := works.ArtworkIDFromSlug(c.Param("slug"))
	a, err := h.artworks.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return works.Artwork{}, false
	}
	return a, true
}

// ------------------------------
// GET /portfolio?tab=
// ------------------------------
func (h *Handler) Portfolio(c *gin.Context) {
	items, err := h.artworks.List(c.Request.Context())
	if err != nil {
		// the public gallery shows an empty state instead of an error
		logger.Log.WithError(err).Warn("portfolio: failed to load artworks")
		items = nil
	}
	c.JSON(http.StatusOK, h.toPortfolioDTO(items, c.Query("tab")))
}

// ------------------------------
// GET /portfolio/:slug
// ------------------------------
func (h *Handler) PortfolioItem(c *gin.Context) {
	a, ok := h.loadBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toArtworkDTO(a))
}

// ------------------------------
// GET /categories
// ------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tabs":    works.CategoryTabs,
		"options": works.CategoryOptions(),
	})
}

// ------------------------------
// GET /admin/portfolio?tab=
// ------------------------------
func (h *Handler) AdminPortfolio(c *gin.Context) {
	items, err := h.artworks.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toPortfolioDTO(items, c.Query("tab")))
}

// ------------------------------
// GET /admin/portfolio/:slug
// ------------------------------
func (h *Handler) AdminArtwork(c *gin.Context) {
	a, ok := h.loadBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ArtworkDetailDTO{
		Artwork: h.toArtworkDTO(a),
		Details: detailRows(a),
	})
}

// ------------------------------
// GET /admin/portfolio/:slug/edit
// ------------------------------
func (h *Handler) EditForm(c *gin.Context) {
	a, ok := h.loadBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, EditFormDTO{
		Artwork:         h.toArtworkDTO(a),
		CategoryOptions: works.CategoryOptions(),
	})
}

// ------------------------------
// PUT|POST /admin/portfolio/:slug/edit  (multipart)
// ------------------------------
func (h *Handler) Edit(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	fh, _ := c.FormFile("image")
	form := readArtworkForm(c)
	fields, err := form.validate(func() error {
		if fh == nil && form.ImageURL == "" {
			return apperror.Validation(MsgStorageURLRequired)
		}
		return nil
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	var img *imageFile
	if fh != nil {
		if img, err = readImage(fh); err != nil {
			respond.Error(c, err)
			return
		}
	}

	existing, ok := h.loadBySlug(c)
	if !ok {
		return
	}

	updated, err := h.updateArtwork(c.Request.Context(), fmt.Sprint(userID), existing, fields, img, form.ImageURL)
	if err != nil {
		respond.Error(c, err)
		return
	}

	dto := h.toArtworkDTO(updated)
	c.JSON(http.StatusOK, SavedDTO{Slug: dto.Slug, Artwork: dto})
}

// ------------------------------
// POST /admin/upload  (multipart)
// ------------------------------
func (h *Handler) Upload(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		respond.Validation(c, MsgImageRequired)
		return
	}

	fields, err := readArtworkForm(c).validate(nil)
	if err != nil {
		respond.Error(c, err)
		return
	}

	img, err := readImage(fh)
	if err != nil {
		respond.Error(c, err)
		return
	}

	created, err := h.createArtwork(c.Request.Context(), fmt.Sprint(userID), fields, img)
	if err != nil {
		respond.Error(c, err)
		return
	}

	logger.Log.WithField("artwork_id", created.ID).Info("artwork uploaded")
	dto := h.toArtworkDTO(created)
	c.JSON(http.StatusCreated, SavedDTO{Slug: dto.Slug, Artwork: dto})
}
