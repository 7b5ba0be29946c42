package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adminapi "artist-portfolio/internal/api/admin"
	authapi "artist-portfolio/internal/api/auth"
	"artist-portfolio/internal/api/billing"
	siteapi "artist-portfolio/internal/api/site"
	stripewebhooks "artist-portfolio/internal/api/stripewebhook"
	worksapi "artist-portfolio/internal/api/works"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/token"
	"artist-portfolio/internal/repository"
	"artist-portfolio/internal/session"
	"artist-portfolio/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	pw := string(hash)

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://localhost/media")
	require.NoError(t, err)

	artworks := repository.NewMemoryArtworks()
	issuer := token.NewIssuer("routes-secret", time.Hour)
	sessions := session.NewMemoryStore()
	accounts := repository.NewMemoryUsers(users.User{Email: "artist@example.com", Password: &pw, Role: users.RoleAdmin})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Issuer:   issuer,
		Sessions: sessions,
		Auth:     authapi.NewHandler(accounts, issuer, sessions),
		Works:    worksapi.NewHandler(artworks, store, worksapi.NewPriceFormatter("usd")),
		Site:     siteapi.NewHandler(repository.NewMemoryPages(), artworks),
		Admin:    adminapi.NewHandler(artworks),
		Checkout: billing.NewHandler(artworks, billing.Config{}),
		Webhook:  stripewebhooks.NewHandler(artworks, ""),
		MediaDir: dir,
	})
	return r
}

func call(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"artist@example.com","password":"s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	w, body := call(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return body["token"].(string)
}

func TestPublicRoutes(t *testing.T) {
	r := newServer(t)
	for _, path := range []string{"/health", "/", "/portfolio", "/categories", "/pages", "/about", "/meet-the-artist"} {
		t.Run(path, func(t *testing.T) {
			w, _ := call(r, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAdminRequiresToken(t *testing.T) {
	r := newServer(t)
	for _, path := range []string{"/admin", "/admin/portfolio"} {
		w, _ := call(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCheckoutDisabledWithoutStripe(t *testing.T) {
	r := newServer(t)
	w, _ := call(r, httptest.NewRequest(http.MethodPost, "/portfolio/x--1/checkout", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUploadThenBrowse(t *testing.T) {
	r := newServer(t)
	tok := login(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "<b>Tide</b>"))
	require.NoError(t, mw.WriteField("description", "Oil on canvas"))
	require.NoError(t, mw.WriteField("category", "Sunrise and Seas"))
	fw, err := mw.CreateFormFile("image", "tide.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)
	w, saved := call(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	slug := saved["slug"].(string)
	assert.True(t, strings.HasPrefix(slug, "tide--"), slug)

	w, _ = call(r, httptest.NewRequest(http.MethodGet, "/portfolio/"+slug, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w, portfolio := call(r, httptest.NewRequest(http.MethodGet, "/portfolio?tab=sunrise-and-seas", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, portfolio["items"], 1)

	// stored image is served from the media dir
	art := saved["artwork"].(map[string]any)
	mediaPath := strings.TrimPrefix(art["image_url"].(string), "http://localhost")
	w, _ = call(r, httptest.NewRequest(http.MethodGet, mediaPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	admin := httptest.NewRequest(http.MethodGet, "/admin", nil)
	admin.Header.Set("Authorization", "Bearer "+tok)
	w, stats := call(r, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, stats["total_artworks"])
}

func TestLogoutEndsSession(t *testing.T) {
	r := newServer(t)
	tok := login(t, r)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w, _ := call(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w, _ = call(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
