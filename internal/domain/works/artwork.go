package works

import "time"

const DefaultTitle = "Untitled"

type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string  `gorm:"not null;default:''" json:"title"`
	Description string  `gorm:"not null;default:''" json:"description"`
	Category    *string `gorm:"type:text;index" json:"category"`

	ImageURL  *string `gorm:"column:image_url" json:"image_url"`
	ImagePath *string `gorm:"column:image_path" json:"-"`

	IsFavourite bool `gorm:"not null;default:false;index" json:"is_favourite"`
	IsSold      bool `gorm:"not null;default:false" json:"is_sold"`

	Price    *float64   `gorm:"type:numeric(12,2)" json:"price"`
	StoreURL *string    `gorm:"column:store_url" json:"store_url"`
	Date     *time.Time `gorm:"type:date" json:"date"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Artwork) TableName() string { return "artwork" }

// CategoryValue returns the raw category, "" when absent.
func (a Artwork) CategoryValue() string {
	if a.Category == nil {
		return ""
	}
	return *a.Category
}

func (a Artwork) DisplayTitle() string {
	if a.Title == "" {
		return DefaultTitle
	}
	return a.Title
}

func (a Artwork) HasImage() bool {
	return a.ImageURL != nil && *a.ImageURL != ""
}
