package siteapi

import "encoding/json"

const HeroIntervalMS = 5000

type BlockDTO struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	SortIndex int             `json:"sortIndex"`
	Props     json.RawMessage `json:"props"`
}

type PageDTO struct {
	Slug   string     `json:"slug"`
	Title  string     `json:"title"`
	Blocks []BlockDTO `json:"blocks"`
}

type SlideDTO struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type HomeDTO struct {
	Slides     []SlideDTO `json:"slides"`
	IntervalMS int        `json:"interval_ms"`
}
