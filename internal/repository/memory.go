package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/google/uuid"
)

/*
	In-memory stores
	----------------
	- same contracts as the gorm stores
	- used by handler tests and local runs without a database
*/

type memArtwork struct {
	seq int
	a   works.Artwork
}

type MemoryArtworks struct {
	mu    sync.RWMutex
	seq   int
	items map[string]*memArtwork
	now   func() time.Time
}

func NewMemoryArtworks(seed ...works.Artwork) *MemoryArtworks {
	m := &MemoryArtworks{items: map[string]*memArtwork{}, now: time.Now}
	for i := range seed {
		a := seed[i]
		_ = m.Create(context.Background(), &a)
	}
	return m
}

func (m *MemoryArtworks) sorted(keep func(works.Artwork) bool) []works.Artwork {
	rows := make([]*memArtwork, 0, len(m.items))
	for _, r := range m.items {
		if keep == nil || keep(r.a) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].a.CreatedAt.Equal(rows[j].a.CreatedAt) {
			return rows[i].a.CreatedAt.After(rows[j].a.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]works.Artwork, len(rows))
	for i, r := range rows {
		out[i] = r.a
	}
	return out
}

func (m *MemoryArtworks) List(ctx context.Context) ([]works.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(nil), nil
}

func (m *MemoryArtworks) ListFavourites(ctx context.Context) ([]works.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(func(a works.Artwork) bool { return a.IsFavourite && a.HasImage() }), nil
}

func (m *MemoryArtworks) Get(ctx context.Context, id string) (works.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return works.Artwork{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.items[id]
	if !ok {
		return works.Artwork{}, apperror.ErrArtworkNotFound
	}
	return r.a, nil
}

func (m *MemoryArtworks) Create(ctx context.Context, a *works.Artwork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := m.now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	m.seq++
	m.items[a.ID] = &memArtwork{seq: m.seq, a: *a}
	return nil
}

func (m *MemoryArtworks) Update(ctx context.Context, a *works.Artwork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[a.ID]
	if !ok {
		return apperror.ErrArtworkNotFound
	}
	a.CreatedAt = r.a.CreatedAt
	a.UpdatedAt = m.now()
	r.a = *a
	return nil
}

func (m *MemoryArtworks) MarkSold(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return apperror.ErrArtworkNotFound
	}
	r.a.IsSold = true
	return nil
}

type MemoryUsers struct {
	mu    sync.RWMutex
	items []users.User
}

func NewMemoryUsers(seed ...users.User) *MemoryUsers {
	m := &MemoryUsers{}
	for i, u := range seed {
		if u.ID == 0 {
			u.ID = uint(i + 1)
		}
		m.items = append(m.items, u)
	}
	return m
}

func (m *MemoryUsers) find(match func(users.User) bool) (users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.items {
		if match(u) {
			return u, nil
		}
	}
	return users.User{}, apperror.ErrUserNotFound
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (users.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return m.find(func(u users.User) bool { return u.Email == email })
}

func (m *MemoryUsers) FindByID(_ context.Context, id uint) (users.User, error) {
	return m.find(func(u users.User) bool { return u.ID == id })
}

func (m *MemoryUsers) FindByGoogleSub(_ context.Context, sub string) (users.User, error) {
	return m.find(func(u users.User) bool { return u.GoogleSub != nil && *u.GoogleSub == sub })
}

func (m *MemoryUsers) update(id uint, fn func(*users.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			fn(&m.items[i])
			return nil
		}
	}
	return apperror.ErrUserNotFound
}

func (m *MemoryUsers) LinkGoogle(_ context.Context, id uint, sub string) error {
	return m.update(id, func(u *users.User) { u.GoogleSub = &sub })
}

func (m *MemoryUsers) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	return m.update(id, func(u *users.User) { u.LastLoginAt = &at })
}

type MemoryPages struct {
	pages map[string]site.SitePage
}

func NewMemoryPages(pages ...site.SitePage) *MemoryPages {
	m := &MemoryPages{pages: map[string]site.SitePage{}}
	for _, p := range pages {
		sort.SliceStable(p.Blocks, func(i, j int) bool { return p.Blocks[i].SortIndex < p.Blocks[j].SortIndex })
		m.pages[p.Slug] = p
	}
	return m
}

func (m *MemoryPages) FindPublished(_ context.Context, slug string) (site.SitePage, error) {
	p, ok := m.pages[slug]
	if !ok || !p.IsPublished() {
		return site.SitePage{}, apperror.ErrPageNotFound
	}
	return p, nil
}
