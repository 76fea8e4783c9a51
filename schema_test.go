package embedmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalProperties(t *testing.T) {
	want := []string{
		"type", "version", "title", "description",
		"authorName", "authorUrl", "providerName", "providerUrl",
		"cacheAge", "thumbnailUrl", "thumbnailWidth", "thumbnailHeight",
		"html", "width", "height", "url",
	}
	assert.Equal(t, want, CanonicalProperties())

	// The returned slice is a copy.
	got := CanonicalProperties()
	got[0] = "mutated"
	assert.Equal(t, want, CanonicalProperties())
}

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	assert.Len(t, defaults, len(CanonicalProperties()))
	for _, name := range CanonicalProperties() {
		value, ok := defaults[name]
		assert.True(t, ok, name)
		assert.Empty(t, value, name)
	}

	// The returned map is a copy.
	defaults[PropertyTitle] = "mutated"
	delete(defaults, PropertyURL)
	fresh := Defaults()
	assert.Empty(t, fresh[PropertyTitle])
	assert.Contains(t, fresh, PropertyURL)
}

func TestIsCanonical(t *testing.T) {
	for _, name := range CanonicalProperties() {
		assert.True(t, IsCanonical(name), name)
	}

	assert.False(t, IsCanonical("og:title"))
	assert.False(t, IsCanonical(""))
	assert.False(t, IsCanonical("Title")) // case-sensitive
}
