package admin

import (
	"net/http"

	"artist-portfolio/internal/api/respond"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

const recentLimit = 5

type RecentArtwork struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Category  string `json:"category_label"`
	IsSold    bool   `json:"is_sold"`
	CreatedAt string `json:"created_at"`
}

type AdminStats struct {
	TotalArtworks int             `json:"total_artworks"`
	PerTab        map[string]int  `json:"per_tab"`
	Uncounted     int             `json:"uncounted"`
	Sold          int             `json:"sold"`
	Available     int             `json:"available"`
	Favourites    int             `json:"favourites"`
	WithoutImage  int             `json:"without_image"`
	Recent        []RecentArtwork `json:"recent"`
}

type Handler struct {
	artworks repository.Artworks
}

func NewHandler(artworks repository.Artworks) *Handler {
	return &Handler{artworks: artworks}
}

func buildStats(all []works.Artwork) AdminStats {
	stats := AdminStats{
		TotalArtworks: len(all),
		PerTab:        works.TabCounts(all),
		Recent:        []RecentArtwork{},
	}

	tabbed := 0
	for _, n := range stats.PerTab {
		tabbed += n
	}
	stats.Uncounted = len(all) - tabbed

	for _, a := range all {
		if a.IsSold {
			stats.Sold++
		}
		if a.IsFavourite {
			stats.Favourites++
		}
		if !a.HasImage() {
			stats.WithoutImage++
		}
	}
	stats.Available = len(all) - stats.Sold

	// repository order is newest first
	for i := 0; i < len(all) && i < recentLimit; i++ {
		a := all[i]
		stats.Recent = append(stats.Recent, RecentArtwork{
			ID:        a.ID,
			Slug:      works.ArtworkSlug(a),
			Title:     a.DisplayTitle(),
			Category:  works.CategoryLabel(a.CategoryValue()),
			IsSold:    a.IsSold,
			CreatedAt: a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return stats
}

// ------ GET /admin ------
func (h *Handler) Dashboard(c *gin.Context) {
	all, err := h.artworks.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, buildStats(all))
}
