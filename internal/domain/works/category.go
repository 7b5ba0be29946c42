package works

import "strings"

// Canonical stored values. Misc has no stored value: the column is NULL.
const (
	CategoryPortraits      = "portraits"
	CategorySunriseAndSeas = "sunrise and seas"
	CategoryMisc           = ""
)

const (
	LabelPortraits      = "Portraits"
	LabelSunriseAndSeas = "Sunrise and Seas"
	LabelMisc           = "Misc"
)

type CategoryKind int

const (
	KindUncategorized CategoryKind = iota
	KindPortraits
	KindSunriseAndSeas
	// KindOther is any non-empty value outside the canonical buckets.
	KindOther
)

// Category is a classified category value. Raw keeps the string exactly as
// it was stored so ad-hoc categories can be shown verbatim.
type Category struct {
	Kind CategoryKind
	Raw  string
}

// NormalizeCategory trims and lowercases a category for comparison.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// ClassifyCategory maps a possibly absent category to its bucket.
func ClassifyCategory(category *string) Category {
	if category == nil {
		return Category{Kind: KindUncategorized}
	}
	raw := *category
	switch NormalizeCategory(raw) {
	case CategoryMisc:
		return Category{Kind: KindUncategorized, Raw: raw}
	case CategoryPortraits:
		return Category{Kind: KindPortraits, Raw: raw}
	case CategorySunriseAndSeas:
		return Category{Kind: KindSunriseAndSeas, Raw: raw}
	default:
		return Category{Kind: KindOther, Raw: raw}
	}
}

func (c Category) Label() string {
	switch c.Kind {
	case KindPortraits:
		return LabelPortraits
	case KindSunriseAndSeas:
		return LabelSunriseAndSeas
	case KindOther:
		if c.Raw != "" {
			return c.Raw
		}
	}
	return LabelMisc
}

// CategoryLabel returns the display label. Unknown categories come back
// unmodified, not normalized.
func CategoryLabel(category string) string {
	return ClassifyCategory(&category).Label()
}

func IsValidCategory(category string) bool {
	return ClassifyCategory(&category).Kind != KindOther
}

// CategoryTab is one entry of the portfolio tab bar.
type CategoryTab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	kind  CategoryKind
}

func (t CategoryTab) Matches(category string) bool {
	return t.kind == ClassifyCategory(&category).Kind
}

// MatchesArtwork treats a NULL category as Misc.
func (t CategoryTab) MatchesArtwork(a Artwork) bool {
	return t.kind == ClassifyCategory(a.Category).Kind
}

// CategoryTabs is ordered: the first tab is the fallback for unknown keys.
var CategoryTabs = []CategoryTab{
	{Key: "portraits", Label: LabelPortraits, Value: CategoryPortraits, kind: KindPortraits},
	{Key: "sunrise-and-seas", Label: LabelSunriseAndSeas, Value: CategorySunriseAndSeas, kind: KindSunriseAndSeas},
	{Key: "misc", Label: LabelMisc, Value: CategoryMisc, kind: KindUncategorized},
}

// TabByKey returns the tab with the given key, or the first tab.
func TabByKey(key string) CategoryTab {
	for _, t := range CategoryTabs {
		if t.Key == key {
			return t
		}
	}
	return CategoryTabs[0]
}

type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions lists the choices for a category select; Misc is the blank default.
func CategoryOptions() []CategoryOption {
	return []CategoryOption{
		{Value: CategoryMisc, Label: "Misc (default)"},
		{Value: CategoryPortraits, Label: LabelPortraits},
		{Value: CategorySunriseAndSeas, Label: LabelSunriseAndSeas},
	}
}
