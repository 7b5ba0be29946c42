package siteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

type downPages struct{}

func (downPages) FindPublished(context.Context, string) (site.SitePage, error) {
	return site.SitePage{}, apperror.Wrap(errors.New("dial tcp: refused"), apperror.ErrCodeDatabase, "Failed to load page")
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/", h.Home)
	r.GET("/pages", h.Menu)
	for _, slug := range site.PublicPages {
		r.GET("/"+slug, h.Page(slug))
	}
	r.GET("/unknown", h.Page("unknown"))
	return r
}

func get(t *testing.T, r http.Handler, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestHomeSlides(t *testing.T) {
	url := "https://cdn.example.com/a.jpg"
	artworks := repository.NewMemoryArtworks(
		works.Artwork{Title: "", IsFavourite: true, ImageURL: &url},
		works.Artwork{Title: "Hidden", IsFavourite: true},
		works.Artwork{Title: "Plain", ImageURL: &url},
	)
	r := newRouter(NewHandler(repository.NewMemoryPages(), artworks))

	var got HomeDTO
	require.Equal(t, http.StatusOK, get(t, r, "/", &got))
	assert.Equal(t, 5000, got.IntervalMS)
	require.Len(t, got.Slides, 1)
	assert.Equal(t, "Untitled", got.Slides[0].Title)
	assert.Equal(t, url, got.Slides[0].ImageURL)
	assert.Equal(t, "artwork--"+got.Slides[0].ID, got.Slides[0].Slug)
}

func TestPageFromStore(t *testing.T) {
	pages := repository.NewMemoryPages(site.SitePage{
		Slug:   site.PageAbout,
		Title:  "About me",
		Status: site.StatusPublished,
		Blocks: []site.SitePageBlock{{Type: "statement", Props: json.RawMessage(`{"paragraphs":["hi"]}`)}},
	})
	r := newRouter(NewHandler(pages, repository.NewMemoryArtworks()))

	var got PageDTO
	require.Equal(t, http.StatusOK, get(t, r, "/about", &got))
	assert.Equal(t, "About me", got.Title)
	require.Len(t, got.Blocks, 1)
	assert.JSONEq(t, `{"paragraphs":["hi"]}`, string(got.Blocks[0].Props))
}

func TestPageFallsBackToDefaults(t *testing.T) {
	for _, pages := range []repository.Pages{repository.NewMemoryPages(), downPages{}} {
		r := newRouter(NewHandler(pages, repository.NewMemoryArtworks()))
		var got PageDTO
		require.Equal(t, http.StatusOK, get(t, r, "/art-classes", &got))
		assert.Equal(t, site.PageArtClasses, got.Slug)
		assert.NotEmpty(t, got.Blocks)
	}

	r := newRouter(NewHandler(repository.NewMemoryPages(), repository.NewMemoryArtworks()))
	assert.Equal(t, http.StatusNotFound, get(t, r, "/unknown", nil))
}

func TestMenu(t *testing.T) {
	r := newRouter(NewHandler(repository.NewMemoryPages(), repository.NewMemoryArtworks()))
	var got struct {
		Pages []struct {
			Slug  string `json:"slug"`
			Title string `json:"title"`
		} `json:"pages"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/pages", &got))
	require.Len(t, got.Pages, len(site.PublicPages))
	assert.Equal(t, site.PageAbout, got.Pages[0].Slug)
	assert.Equal(t, "About", got.Pages[0].Title)
}
