package embedmeta

// Correspondence maps one producer-native field name to a destination name,
// usually a canonical property.
type Correspondence struct {
	Source string
	Target string
}

// Corr is a shorthand constructor for correspondence literals.
func Corr(source, target string) Correspondence {
	return Correspondence{Source: source, Target: target}
}

// Correspondences is an ordered correspondence table. It is a slice rather
// than a map because application order is part of the contract: when two
// pairs target the same destination, the later pair wins.
//
// Tables are consumed during construction and not retained by the record.
type Correspondences []Correspondence

// Reindex applies the table to props and returns the remapped result.
//
// The result starts as a copy of props. For each pair in table order whose
// source key is present, the source value is written under the target name.
// Source keys are never removed, so source and target coexist whenever they
// differ. Pairs with a missing source are skipped silently.
func (cs Correspondences) Reindex(props map[string]string) map[string]string {
	result := make(map[string]string, len(props)+len(cs))
	for name, value := range props {
		result[name] = value
	}
	for _, c := range cs {
		if value, ok := props[c.Source]; ok {
			result[c.Target] = value
		}
	}
	return result
}
