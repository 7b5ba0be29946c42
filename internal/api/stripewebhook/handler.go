package stripewebhooks

import (
	"encoding/json"
	"io"
	"net/http"

	infrastripe "artist-portfolio/internal/infra/stripe"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

const maxPayloadBytes = 65536

type Handler struct {
	artworks repository.Artworks
	secret   string
}

func NewHandler(artworks repository.Artworks, secret string) *Handler {
	return &Handler{artworks: artworks, secret: secret}
}

// ------ POST /webhook ------
func (h *Handler) StripeWebhook(c *gin.Context) {
	if h.secret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, maxPayloadBytes)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		logger.Log.WithError(err).Warn("stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	log := logger.Log.WithFields(logrus.Fields{"event_id": event.ID, "event_type": event.Type})

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		h.checkoutPaid(c, log, &session)
		return

	default:
		// acknowledged so stripe stops retrying
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

func (h *Handler) checkoutPaid(c *gin.Context, log *logrus.Entry, session *stripe.CheckoutSession) {
	if !infrastripe.IsPaid(session) {
		// async methods settle later with async_payment_succeeded
		log.WithField("payment_status", session.PaymentStatus).Info("checkout completed without payment")
		c.JSON(http.StatusOK, gin.H{"status": "pending"})
		return
	}

	artworkID, err := infrastripe.ArtworkIDFromSession(session)
	if err != nil {
		log.WithError(err).Warn("checkout session has no artwork")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.artworks.MarkSold(c.Request.Context(), artworkID); err != nil {
		if apperror.IsNotFound(err) {
			log.WithField("artwork_id", artworkID).Warn("paid checkout for unknown artwork")
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		log.WithError(err).WithField("artwork_id", artworkID).Error("mark artwork sold failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.WithField("artwork_id", artworkID).Info("artwork sold")
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
