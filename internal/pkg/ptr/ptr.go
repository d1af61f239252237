package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed value or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonEmpty returns nil for "" so optional text columns stay NULL.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
