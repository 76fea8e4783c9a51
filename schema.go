package embedmeta

// Canonical property names.
//
// This list is the interchange contract between all producers and consumers
// of Media records: every producer is expected to populate these names so
// downstream access stays uniform regardless of the upstream vocabulary.
// Adding a new canonical name is backward compatible; renaming or removing
// one is not.
const (
	PropertyType            = "type"
	PropertyVersion         = "version"
	PropertyTitle           = "title"
	PropertyDescription     = "description"
	PropertyAuthorName      = "authorName"
	PropertyAuthorURL       = "authorUrl"
	PropertyProviderName    = "providerName"
	PropertyProviderURL     = "providerUrl"
	PropertyCacheAge        = "cacheAge"
	PropertyThumbnailURL    = "thumbnailUrl"
	PropertyThumbnailWidth  = "thumbnailWidth"
	PropertyThumbnailHeight = "thumbnailHeight"
	PropertyHTML            = "html"
	PropertyWidth           = "width"
	PropertyHeight          = "height"
	PropertyURL             = "url"
)

var canonicalProperties = []string{
	PropertyType,
	PropertyVersion,
	PropertyTitle,
	PropertyDescription,
	PropertyAuthorName,
	PropertyAuthorURL,
	PropertyProviderName,
	PropertyProviderURL,
	PropertyCacheAge,
	PropertyThumbnailURL,
	PropertyThumbnailWidth,
	PropertyThumbnailHeight,
	PropertyHTML,
	PropertyWidth,
	PropertyHeight,
	PropertyURL,
}

// CanonicalProperties returns the canonical property names in their
// documented order. The returned slice is a copy and safe to modify.
func CanonicalProperties() []string {
	out := make([]string, len(canonicalProperties))
	copy(out, canonicalProperties)
	return out
}

// Defaults returns the canonical defaults table: every canonical property
// mapped to the empty string. Construction never applies this table
// implicitly; it exists for producers that pre-populate the canonical set
// before adding provider-specific extras (see also WithDefaults).
func Defaults() map[string]string {
	defaults := make(map[string]string, len(canonicalProperties))
	for _, name := range canonicalProperties {
		defaults[name] = ""
	}
	return defaults
}

// IsCanonical reports whether name belongs to the canonical property set.
func IsCanonical(name string) bool {
	for _, p := range canonicalProperties {
		if p == name {
			return true
		}
	}
	return false
}
