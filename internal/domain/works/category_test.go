package works

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "portraits", NormalizeCategory(" Portraits "))
	assert.Equal(t, "sunrise and seas", NormalizeCategory("SUNRISE AND SEAS\t"))
	assert.Equal(t, "", NormalizeCategory("   "))
	assert.Equal(t, "", NormalizeCategory(""))
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want CategoryKind
	}{
		{"nil", nil, KindUncategorized},
		{"empty", strPtr(""), KindUncategorized},
		{"whitespace", strPtr("  "), KindUncategorized},
		{"portraits", strPtr("Portraits"), KindPortraits},
		{"sunrise", strPtr(" sunrise and Seas"), KindSunriseAndSeas},
		{"other", strPtr("Abstract"), KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.in).Kind)
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "ABSTRACT", CategoryLabel("ABSTRACT"))
	assert.Equal(t, "Misc", CategoryLabel(""))
	assert.Equal(t, "Misc", CategoryLabel("  "))
	assert.Equal(t, "Portraits", CategoryLabel(" PORTRAITS"))
	assert.Equal(t, "Sunrise and Seas", CategoryLabel("sunrise and seas"))
	assert.Equal(t, " Still life ", CategoryLabel(" Still life "))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(""))
	assert.True(t, IsValidCategory("Portraits"))
	assert.True(t, IsValidCategory("Sunrise and Seas "))
	assert.False(t, IsValidCategory("Abstract"))
	assert.False(t, IsValidCategory("sunrise-and-seas"))
}

func TestCategoryTabs(t *testing.T) {
	if assert.Len(t, CategoryTabs, 3) {
		assert.Equal(t, "portraits", CategoryTabs[0].Key)
		assert.Equal(t, "sunrise-and-seas", CategoryTabs[1].Key)
		assert.Equal(t, "misc", CategoryTabs[2].Key)
	}

	assert.True(t, CategoryTabs[0].Matches("Portraits"))

	misc := TabByKey("misc")
	assert.Equal(t, "misc", misc.Key)
	assert.True(t, misc.MatchesArtwork(Artwork{Category: nil}))
	assert.True(t, misc.Matches(""))
	assert.False(t, misc.Matches("Abstract"))
}

func TestTabByKeyFallsBackToFirstTab(t *testing.T) {
	assert.Equal(t, CategoryTabs[0].Key, TabByKey("").Key)
	assert.Equal(t, CategoryTabs[0].Key, TabByKey("landscapes").Key)
	assert.Equal(t, "sunrise-and-seas", TabByKey("sunrise-and-seas").Key)
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions()
	if assert.Len(t, opts, 3) {
		assert.Equal(t, CategoryOption{Value: "", Label: "Misc (default)"}, opts[0])
		assert.Equal(t, CategoryPortraits, opts[1].Value)
		assert.Equal(t, CategorySunriseAndSeas, opts[2].Value)
	}
	for _, o := range opts {
		assert.True(t, IsValidCategory(o.Value))
	}
}
