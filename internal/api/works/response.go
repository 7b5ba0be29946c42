package works

import (
	"fmt"
	"strings"
	"time"

	"artist-portfolio/internal/domain/works"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout  = "2006-01-02"
	emptyDetail = "—"

	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

type AvailabilityDTO struct {
	State string `json:"state"`
	Label string `json:"label"`
}

type ArtworkDTO struct {
	ID            string  `json:"id"`
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	DisplayTitle  string  `json:"display_title"`
	Description   string  `json:"description"`
	Category      *string `json:"category"`
	CategoryLabel string  `json:"category_label"`

	ImageURL    *string `json:"image_url"`
	IsFavourite bool    `json:"is_favourite"`
	IsSold      bool    `json:"is_sold"`

	Price        *float64        `json:"price"`
	PriceDisplay string          `json:"price_display,omitempty"`
	StoreURL     *string         `json:"store_url"`
	Availability AvailabilityDTO `json:"availability"`
	CanPurchase  bool            `json:"can_purchase"`

	Date      *string   `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TabDTO struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

type PortfolioDTO struct {
	Tabs      []TabDTO     `json:"tabs"`
	ActiveTab string       `json:"active_tab"`
	Items     []ArtworkDTO `json:"items"`
}

type DetailRowDTO struct {
	Field  string `json:"field"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	IsLink bool   `json:"is_link,omitempty"`
}

type ArtworkDetailDTO struct {
	Artwork ArtworkDTO     `json:"artwork"`
	Details []DetailRowDTO `json:"details"`
}

type EditFormDTO struct {
	Artwork         ArtworkDTO             `json:"artwork"`
	CategoryOptions []works.CategoryOption `json:"category_options"`
}

type SavedDTO struct {
	Slug    string     `json:"slug"`
	Artwork ArtworkDTO `json:"artwork"`
}

// PriceFormatter renders prices as "$1,250.00" for the store currency.
type PriceFormatter struct {
	symbol string
	tag    language.Tag
}

var currencySymbols = map[string]string{
	"usd": "$",
	"cad": "$",
	"aud": "$",
	"nzd": "$",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
}

func NewPriceFormatter(currency string) *PriceFormatter {
	currency = strings.ToLower(strings.TrimSpace(currency))
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}
	return &PriceFormatter{symbol: symbol, tag: language.English}
}

func (p *PriceFormatter) Format(price *float64) string {
	if price == nil {
		return ""
	}
	return p.symbol + message.NewPrinter(p.tag).Sprintf("%.2f", *price)
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(dateLayout)
	return &s
}

func (h *Handler) toArtworkDTO(a works.Artwork) ArtworkDTO {
	availability := AvailabilityDTO{State: AvailabilityAvailable, Label: "Available"}
	if a.IsSold {
		availability = AvailabilityDTO{State: AvailabilityUnavailable, Label: "Unavailable"}
	}

	return ArtworkDTO{
		ID:            a.ID,
		Slug:          works.ArtworkSlug(a),
		Title:         a.Title,
		DisplayTitle:  a.DisplayTitle(),
		Description:   a.Description,
		Category:      a.Category,
		CategoryLabel: works.ClassifyCategory(a.Category).Label(),
		ImageURL:      a.ImageURL,
		IsFavourite:   a.IsFavourite,
		IsSold:        a.IsSold,
		Price:         a.Price,
		PriceDisplay:  h.prices.Format(a.Price),
		StoreURL:      a.StoreURL,
		Availability:  availability,
		CanPurchase:   !a.IsSold && (a.StoreURL != nil || a.Price != nil),
		Date:          formatDate(a.Date),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (h *Handler) toArtworkDTOs(items []works.Artwork) []ArtworkDTO {
	out := make([]ArtworkDTO, 0, len(items))
	for _, a := range items {
		out = append(out, h.toArtworkDTO(a))
	}
	return out
}

func (h *Handler) toPortfolioDTO(all []works.Artwork, tabKey string) PortfolioDTO {
	active := works.TabByKey(tabKey)
	counts := works.TabCounts(all)

	tabs := make([]TabDTO, 0, len(works.CategoryTabs))
	for _, t := range works.CategoryTabs {
		tabs = append(tabs, TabDTO{
			Key:    t.Key,
			Label:  t.Label,
			Count:  counts[t.Key],
			Active: t.Key == active.Key,
		})
	}

	return PortfolioDTO{
		Tabs:      tabs,
		ActiveTab: active.Key,
		Items:     h.toArtworkDTOs(works.FilterByTab(all, active.Key)),
	}
}

// detailLabel turns "is_sold" into "Is Sold".
func detailLabel(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

func detailValue(v any) string {
	switch x := v.(type) {
	case nil:
		return emptyDetail
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case string:
		if x == "" {
			return emptyDetail
		}
		return x
	case *string:
		if x == nil {
			return emptyDetail
		}
		return detailValue(*x)
	case *float64:
		if x == nil {
			return emptyDetail
		}
		return fmt.Sprintf("%g", *x)
	case *time.Time:
		if x == nil {
			return emptyDetail
		}
		return x.Format(dateLayout)
	case time.Time:
		if x.IsZero() {
			return emptyDetail
		}
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

// detailRows lists every stored field of an artwork in column order.
func detailRows(a works.Artwork) []DetailRowDTO {
	fields := []struct {
		name  string
		value any
	}{
		{"id", a.ID},
		{"title", a.Title},
		{"description", a.Description},
		{"category", a.Category},
		{"image_url", a.ImageURL},
		{"is_favourite", a.IsFavourite},
		{"is_sold", a.IsSold},
		{"price", a.Price},
		{"store_url", a.StoreURL},
		{"date", a.Date},
		{"created_at", a.CreatedAt},
		{"updated_at", a.UpdatedAt},
	}

	rows := make([]DetailRowDTO, 0, len(fields))
	for _, f := range fields {
		value := detailValue(f.value)
		rows = append(rows, DetailRowDTO{
			Field:  f.name,
			Label:  detailLabel(f.name),
			Value:  value,
			IsLink: strings.HasSuffix(f.name, "_url") && value != emptyDetail,
		})
	}
	return rows
}
