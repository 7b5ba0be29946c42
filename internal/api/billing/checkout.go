package billing

import (
	"math"
	"net/http"
	"net/url"

	"artist-portfolio/internal/api/respond"
	"artist-portfolio/internal/domain/works"
	infrastripe "artist-portfolio/internal/infra/stripe"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// SessionCreator is checkoutsession.New; tests swap it.
type SessionCreator func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

type Config struct {
	Enabled  bool
	Currency string
	AppURL   string
}

type Handler struct {
	artworks repository.Artworks
	cfg      Config
	create   SessionCreator
}

func NewHandler(artworks repository.Artworks, cfg Config) *Handler {
	return &Handler{artworks: artworks, cfg: cfg, create: checkoutsession.New}
}

func (h *Handler) WithSessionCreator(fn SessionCreator) *Handler {
	h.create = fn
	return h
}

func (h *Handler) sessionParams(a works.Artwork) *stripe.CheckoutSessionParams {
	slug := works.ArtworkSlug(a)
	page := h.cfg.AppURL + "/portfolio/" + url.PathEscape(slug)

	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(a.DisplayTitle()),
	}
	if a.Description != "" {
		product.Description = stripe.String(a.Description)
	}
	if a.HasImage() {
		product.Images = []*string{stripe.String(*a.ImageURL)}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(page + "?purchased=1"),
		CancelURL:  stripe.String(page),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(h.cfg.Currency),
					UnitAmount:  stripe.Int64(infrastripe.UnitAmount(*a.Price, h.cfg.Currency)),
					ProductData: product,
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(a.ID),
	}
	params.Metadata = map[string]string{infrastripe.MetadataArtworkID: a.ID}
	return params
}

// ------------------------------
// POST /portfolio/:slug/checkout
// ------------------------------
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	if !h.cfg.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online checkout is not available"})
		return
	}

	a, err := h.artworks.Get(c.Request.Context(), works.ArtworkIDFromSlug(c.Param("slug")))
	if err != nil {
		respond.Error(c, err)
		return
	}

	if a.IsSold {
		c.JSON(http.StatusConflict, gin.H{"error": "This artwork has already been sold"})
		return
	}
	if a.Price == nil || !(*a.Price > 0) || math.IsInf(*a.Price, 1) {
		body := gin.H{"error": "This artwork is not for sale online"}
		if a.StoreURL != nil {
			body["store_url"] = *a.StoreURL
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	s, err := h.create(h.sessionParams(a))
	if err != nil {
		logger.Log.WithError(err).WithField("artwork_id", a.ID).Error("stripe checkout session failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
