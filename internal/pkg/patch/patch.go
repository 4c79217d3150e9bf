// Package patch resolves partial-update requests against the stored entity.
package patch

// Coalesce returns *ptr when set, the stored value otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable resolves a field the caller may also remove. clear wins over next,
// and next wins over current.
func Nullable[T any](next *T, clear bool, current *T) *T {
	switch {
	case clear:
		return nil
	case next != nil:
		return next
	default:
		return current
	}
}
