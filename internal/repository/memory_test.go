package repository

import (
	"context"
	"testing"
	"time"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Artworks = (*GormArtworks)(nil)
	_ Artworks = (*MemoryArtworks)(nil)
	_ Users    = (*GormUsers)(nil)
	_ Users    = (*MemoryUsers)(nil)
	_ Pages    = (*GormPages)(nil)
	_ Pages    = (*MemoryPages)(nil)
)

func TestMemoryArtworksListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryArtworks(
		works.Artwork{Title: "old", CreatedAt: base},
		works.Artwork{Title: "new", CreatedAt: base.Add(time.Hour)},
	)
	require.NoError(t, store.Create(ctx, &works.Artwork{Title: "same time", CreatedAt: base.Add(time.Hour)}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "same time", list[0].Title)
	assert.Equal(t, "new", list[1].Title)
	assert.Equal(t, "old", list[2].Title)
	assert.NotEmpty(t, list[0].ID)
}

func TestMemoryArtworksUpdateAndMarkSold(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryArtworks()
	a := works.Artwork{Title: "Morning"}
	require.NoError(t, store.Create(ctx, &a))
	created := a.CreatedAt

	a.Title = "Evening"
	a.CreatedAt = time.Time{}
	require.NoError(t, store.Update(ctx, &a))
	assert.Equal(t, created, a.CreatedAt)

	require.NoError(t, store.MarkSold(ctx, a.ID))
	got, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening", got.Title)
	assert.True(t, got.IsSold)

	assert.True(t, apperror.IsNotFound(store.Update(ctx, &works.Artwork{ID: "missing"})))
	assert.True(t, apperror.IsNotFound(store.MarkSold(ctx, "missing")))
	_, err = store.Get(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestMemoryArtworksFavourites(t *testing.T) {
	url := "https://cdn.example.com/x.jpg"
	store := NewMemoryArtworks(
		works.Artwork{Title: "fav", IsFavourite: true, ImageURL: &url},
		works.Artwork{Title: "fav without image", IsFavourite: true},
		works.Artwork{Title: "plain", ImageURL: &url},
	)
	favs, err := store.ListFavourites(context.Background())
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "fav", favs[0].Title)
}

func TestMemoryArtworksHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemoryArtworks().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUsers(users.User{Email: "artist@example.com", Role: users.RoleAdmin})

	u, err := store.FindByEmail(ctx, " Artist@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)

	require.NoError(t, store.LinkGoogle(ctx, u.ID, "sub-1"))
	linked, err := store.FindByGoogleSub(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, linked.ID)

	_, err = store.FindByID(ctx, 99)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMemoryPagesOnlyPublished(t *testing.T) {
	store := NewMemoryPages(
		site.SitePage{Slug: "about", Status: site.StatusPublished, Blocks: []site.SitePageBlock{{SortIndex: 2, Type: "b"}, {SortIndex: 1, Type: "a"}}},
		site.SitePage{Slug: "store", Status: site.StatusDraft},
	)
	p, err := store.FindPublished(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Blocks[0].Type)

	_, err = store.FindPublished(context.Background(), "store")
	assert.True(t, apperror.IsNotFound(err))
}
