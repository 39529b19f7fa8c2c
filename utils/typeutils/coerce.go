package typeutils

import (
	"fmt"
	"strconv"
)

// Helpers for reading loosely typed settings documents. Missing keys
// fall back to the provided default; present keys are coerced as
// follows and never produce an error:
//   - StringField: scalars render through their native textual form,
//     objects and arrays fall back to the default.
//   - BoolField: strings parse with strconv.ParseBool semantics,
//     numbers read as zero/non-zero, everything else falls back.

func StringField(doc map[string]any, key, fallback string) string {
	value, found := doc[key]
	if !found || value == nil {
		return fallback
	}

	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64: // JSON numbers decode as float64
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int, int8, int16, int32, int64:
		return fmt.Sprint(typed)
	case map[string]any, []any:
		return fallback
	default:
		return fmt.Sprint(typed)
	}
}

func BoolField(doc map[string]any, key string, fallback bool) bool {
	value, found := doc[key]
	if !found || value == nil {
		return fallback
	}

	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(typed)
		if err != nil {
			return fallback
		}
		return parsed
	case float64:
		return typed != 0
	case int, int8, int16, int32, int64:
		return fmt.Sprint(typed) != "0"
	default:
		return fallback
	}
}

// ObjectField reads a nested document under key; found reports whether
// a nested object was actually present.
func ObjectField(doc map[string]any, key string) (map[string]any, bool) {
	value, found := doc[key]
	if !found {
		return nil, false
	}

	nested, ok := value.(map[string]any)
	return nested, ok
}
