package ds

// Repeat fills a fresh slice of length n with value; nil when n is not positive.
func Repeat[T any](n int, value T) []T {
	if n <= 0 {
		return nil
	}
	ts := make([]T, n)
	for i := range ts {
		ts[i] = value
	}
	return ts
}
