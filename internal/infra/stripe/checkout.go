package stripe

import (
	"errors"
	"math"
	"strings"

	stripego "github.com/stripe/stripe-go/v75"
)

const MetadataArtworkID = "artwork_id"

// UnitAmount converts a decimal price to the smallest currency unit.
// Zero-decimal currencies (JPY and friends) are not scaled.
func UnitAmount(price float64, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return int64(math.Round(price))
	}
	return int64(math.Round(price * 100))
}

var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true,
	"kmf": true, "krw": true, "mga": true, "pyg": true, "rwf": true,
	"ugx": true, "vnd": true, "vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// ArtworkIDFromSession reads metadata.artwork_id, else client_reference_id.
func ArtworkIDFromSession(s *stripego.CheckoutSession) (string, error) {
	if s.Metadata != nil {
		if id := strings.TrimSpace(s.Metadata[MetadataArtworkID]); id != "" {
			return id, nil
		}
	}
	if id := strings.TrimSpace(s.ClientReferenceID); id != "" {
		return id, nil
	}
	return "", errors.New("missing artwork_id (metadata.artwork_id or client_reference_id)")
}

// IsPaid reports whether the session's money has actually arrived.
func IsPaid(s *stripego.CheckoutSession) bool {
	switch s.PaymentStatus {
	case stripego.CheckoutSessionPaymentStatusPaid, stripego.CheckoutSessionPaymentStatusNoPaymentRequired:
		return true
	}
	return false
}
