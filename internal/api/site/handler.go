package siteapi

import (
	"net/http"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	pages    repository.Pages
	artworks repository.Artworks
	defaults map[string]site.SitePage
}

func NewHandler(pages repository.Pages, artworks repository.Artworks) *Handler {
	defaults := map[string]site.SitePage{}
	for _, p := range site.DefaultPages() {
		defaults[p.Slug] = p
	}
	return &Handler{pages: pages, artworks: artworks, defaults: defaults}
}

func toPageDTO(p site.SitePage) PageDTO {
	dto := PageDTO{
		Slug:   p.Slug,
		Title:  p.Title,
		Blocks: make([]BlockDTO, 0, len(p.Blocks)),
	}
	for _, b := range p.Blocks {
		dto.Blocks = append(dto.Blocks, BlockDTO{
			ID:        b.ID,
			Type:      b.Type,
			SortIndex: b.SortIndex,
			Props:     b.Props,
		})
	}
	return dto
}

// GET /
func (h *Handler) Home(c *gin.Context) {
	favourites, err := h.artworks.ListFavourites(c.Request.Context())
	if err != nil {
		logger.Log.WithError(err).Warn("home: failed to load favourites")
	}

	slides := make([]SlideDTO, 0, len(favourites))
	for _, a := range works.HeroSlides(favourites) {
		slides = append(slides, SlideDTO{
			ID:       a.ID,
			Slug:     works.ArtworkSlug(a),
			Title:    a.DisplayTitle(),
			ImageURL: *a.ImageURL,
		})
	}

	c.JSON(http.StatusOK, HomeDTO{Slides: slides, IntervalMS: HeroIntervalMS})
}

// Page serves one static page. The seeded copy is used when the stored page
// is missing or the store is down.
func (h *Handler) Page(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.pages.FindPublished(c.Request.Context(), slug)
		if err == nil {
			c.JSON(http.StatusOK, toPageDTO(p))
			return
		}
		if !apperror.IsNotFound(err) {
			logger.Log.WithError(err).WithField("slug", slug).Warn("page: store unavailable, serving default")
		}

		fallback, ok := h.defaults[slug]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusOK, toPageDTO(fallback))
	}
}

// GET /pages
func (h *Handler) Menu(c *gin.Context) {
	type entry struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}
	out := make([]entry, 0, len(site.PublicPages))
	for _, slug := range site.PublicPages {
		out = append(out, entry{Slug: slug, Title: h.defaults[slug].Title})
	}
	c.JSON(http.StatusOK, gin.H{"pages": out})
}
