// Package embedmeta provides a normalized in-memory record for embeddable
// media metadata collected from heterogeneous description formats such as
// oEmbed and OpenGraph.
//
// Different upstream vocabularies describe the same embeddable content with
// different field names. A Media record gives every downstream consumer a
// single stable set of canonical property names, and lets a producer remap
// its native field names onto that canonical set in one deterministic step
// at construction time.
//
// # Media Records
//
// A Media record is an insertion-ordered string-to-string store. Values are
// opaque; the record never interprets or validates them.
//
//	media := embedmeta.New(map[string]string{
//	    embedmeta.PropertyTitle: "My Video",
//	    embedmeta.PropertyType:  "video",
//	})
//
//	title, ok := media.Get(embedmeta.PropertyTitle)
//
// Absence and empty string are distinct states: Get reports presence via its
// second return value, so a property that was never set is not confused with
// one explicitly set to "".
//
// # Canonical Properties
//
// The canonical property set (PropertyType, PropertyVersion, PropertyTitle,
// ...) is the interchange contract between all producers and consumers of
// Media records. Construction does not pre-fill canonical defaults; absence
// means "not set". Producers that want every canonical key present can opt
// in with WithDefaults.
//
// # Correspondences
//
// A producer remaps its native field names onto the canonical set with a
// correspondence table applied once at construction:
//
//	media := embedmeta.New(raw, embedmeta.WithCorrespondences(embedmeta.Correspondences{
//	    embedmeta.Corr("og:title", embedmeta.PropertyTitle),
//	    embedmeta.Corr("og:url", embedmeta.PropertyURL),
//	}))
//
// Reindexing is additive: the source key survives next to its canonical
// target. When two pairs target the same destination, the later pair wins.
//
// # Iteration
//
// All returns a lazy, restartable sequence over the current contents in
// insertion order. Each call observes the live state, so mutations between
// two iterations are visible.
//
//	for name, value := range media.All() {
//	    fmt.Println(name, value)
//	}
//
// # Concurrency
//
// Media is a single-threaded data structure with no internal locking. If a
// record is shared across goroutines, the owner must serialize Set and
// Delete against reads.
package embedmeta
