package embedmeta

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueFromAny converts a Go value into a property value string.
//
// This exists as an adapter layer for producers holding decoded JSON
// payloads (oEmbed responses arrive as map[string]any). Numbers and bools
// are formatted without fmt-based stringification so the result is stable:
// 1.5 stays "1.5", true stays "true". A nil input becomes the empty string.
func ValueFromAny(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("unsupported property value type %T", v)
	}
}

// PropertiesFromAny converts a legacy map[string]any document to the raw
// property map New expects.
func PropertiesFromAny(m map[string]any) (map[string]string, error) {
	props := make(map[string]string, len(m))
	for k, v := range m {
		value, err := ValueFromAny(v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		props[k] = value
	}
	return props, nil
}
