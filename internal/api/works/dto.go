package works

import (
	"math"
	"strconv"
	"strings"
	"time"

	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ---------- multipart form shared by upload and edit

const (
	MsgImageRequired       = "Please select an image file"
	MsgTitleRequired       = "Title is required"
	MsgDescriptionRequired = "Description is required"
	MsgStorageURLRequired  = "Storage URL is required"
	MsgPriceInvalid        = "Price must be a valid number"
	MsgDateInvalid         = "Date must be in YYYY-MM-DD format"
)

type artworkForm struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
	Price       string
	StoreURL    string
	Date        string
	IsFavourite bool
	IsSold      bool
}

// artworkFields are the validated values written to the row.
type artworkFields struct {
	title       string
	description string
	category    *string
	price       *float64
	storeURL    *string
	date        *time.Time
	isFavourite bool
	isSold      bool
}

func readArtworkForm(c *gin.Context) artworkForm {
	return artworkForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		ImageURL:    strings.TrimSpace(c.PostForm("image_url")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		StoreURL:    strings.TrimSpace(c.PostForm("store_url")),
		Date:        strings.TrimSpace(c.PostForm("date")),
		IsFavourite: formBool(c.PostForm("is_favourite")),
		IsSold:      formBool(c.PostForm("is_sold")),
	}
}

// formBool accepts checkbox values; an absent checkbox is false.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// validate checks title, description, then required (if any), then price and date.
func (f artworkForm) validate(required func() error) (artworkFields, error) {
	out := artworkFields{
		title:       f.Title,
		description: f.Description,
		category:    optional(f.Category),
		storeURL:    optional(f.StoreURL),
		isFavourite: f.IsFavourite,
		isSold:      f.IsSold,
	}

	if f.Title == "" {
		return out, apperror.Validation(MsgTitleRequired)
	}
	if f.Description == "" {
		return out, apperror.Validation(MsgDescriptionRequired)
	}
	if required != nil {
		if err := required(); err != nil {
			return out, err
		}
	}

	if f.Price != "" {
		p, err := strconv.ParseFloat(f.Price, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return out, apperror.Validation(MsgPriceInvalid)
		}
		out.price = &p
	}

	if f.Date != "" {
		d, err := time.Parse(dateLayout, f.Date)
		if err != nil {
			return out, apperror.Validation(MsgDateInvalid)
		}
		out.date = &d
	}

	return out, nil
}

func (f artworkFields) apply(a *works.Artwork) {
	a.Title = f.title
	a.Description = f.description
	a.Category = f.category
	a.Price = f.price
	a.StoreURL = f.storeURL
	a.Date = f.date
	a.IsFavourite = f.isFavourite
	a.IsSold = f.isSold
}
