package site

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// SitePage is one static public page (about, contact, ...).
type SitePage struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug   string `gorm:"not null;uniqueIndex" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:'published'" json:"status"`

	Blocks []SitePageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SitePageBlock struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	Type  string          `gorm:"not null;index" json:"type"`
	Props json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"props"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p SitePage) IsPublished() bool { return p.Status == StatusPublished }
