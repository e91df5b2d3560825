package utils

func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func Ptr[T any](v T) *T {
	return &v
}

// Assign copies *src into *dst when src is set. It reports whether dst changed.
func Assign[T any](dst *T, src *T) bool {
	if src == nil || dst == nil {
		return false
	}
	*dst = *src
	return true
}
