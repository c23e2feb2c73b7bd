package utils

// ToPtr returns a pointer to the given value
func ToPtr[T any](v T) *T {
	return &v
}

// FromPtr dereferences p, returning the zero value when p is nil
func FromPtr[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
