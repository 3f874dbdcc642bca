package slicesx

func Map[T, U any](s []T, f func(item T, idx int) U) []U {
	mapped := make([]U, len(s))
	for idx, v := range s {
		mapped[idx] = f(v, idx)
	}
	return mapped
}

func Contains[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// At returns the element at idx or fallback when the slice is too short.
func At[T any](s []T, idx int, fallback T) T {
	if idx >= 0 && idx < len(s) {
		return s[idx]
	}
	return fallback
}
