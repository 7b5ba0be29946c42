package works

// FilterByTab keeps the artworks matching the tab for key (first tab when unknown).
func FilterByTab(items []Artwork, key string) []Artwork {
	tab := TabByKey(key)
	out := make([]Artwork, 0, len(items))
	for _, a := range items {
		if tab.MatchesArtwork(a) {
			out = append(out, a)
		}
	}
	return out
}

// TabCounts counts every tab independently of the active one. Artworks in
// ad-hoc categories are not counted anywhere.
func TabCounts(items []Artwork) map[string]int {
	counts := make(map[string]int, len(CategoryTabs))
	for _, t := range CategoryTabs {
		n := 0
		for _, a := range items {
			if t.MatchesArtwork(a) {
				n++
			}
		}
		counts[t.Key] = n
	}
	return counts
}

// HeroSlides returns the favourite artworks that can be shown in the home slideshow.
func HeroSlides(items []Artwork) []Artwork {
	out := make([]Artwork, 0, len(items))
	for _, a := range items {
		if a.IsFavourite && a.HasImage() {
			out = append(out, a)
		}
	}
	return out
}
