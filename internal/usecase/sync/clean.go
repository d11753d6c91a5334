package sync

// RemoveEmptyValues recursively strips empty strings, empty arrays, empty
// objects and nils from a JSON-shaped value (maps, slices, strings, numbers,
// bools). Scalars other than the empty string pass through unchanged, so
// false and zero survive cleaning.
func RemoveEmptyValues(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cleanMap(v)
	case []any:
		return cleanSlice(v)
	default:
		return value
	}
}

func cleanMap(obj map[string]any) map[string]any {
	result := make(map[string]any, len(obj))
	for key, value := range obj {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if arr, ok := value.([]any); ok && len(arr) == 0 {
			continue
		}
		cleaned := RemoveEmptyValues(value)
		if m, ok := cleaned.(map[string]any); ok && len(m) == 0 {
			continue
		}
		result[key] = cleaned
	}
	return result
}

func cleanSlice(arr []any) []any {
	result := make([]any, 0, len(arr))
	for _, item := range arr {
		cleaned := RemoveEmptyValues(item)
		if cleaned == nil {
			continue
		}
		if s, ok := cleaned.(string); ok && s == "" {
			continue
		}
		if a, ok := cleaned.([]any); ok && len(a) == 0 {
			continue
		}
		if m, ok := cleaned.(map[string]any); ok && len(m) == 0 {
			continue
		}
		result = append(result, cleaned)
	}
	return result
}
