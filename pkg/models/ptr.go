package models

// Ptr returns a pointer to v. It keeps literals for optional fields short.
func Ptr[T any](v T) *T {
	return &v
}
