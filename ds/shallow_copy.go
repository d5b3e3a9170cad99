package ds

// ShallowCopy keeps nil as nil, so a copied "missing" value stays missing.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	return append(make([]T, 0, len(ts)), ts...)
}
