package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps an optional field: a non-nil patch replaces it, nil keeps current.
func CoalescePtr[T any](ptr *T, current *T) *T {
	if ptr != nil {
		v := *ptr
		return &v
	}
	return current
}

// CoalesceSlice replaces the whole slice when the patch carries one (even empty).
func CoalesceSlice[T any](s []T, current []T) []T {
	if s != nil {
		return s
	}
	return current
}
