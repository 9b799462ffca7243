// Package patch holds helpers for applying partial updates where a nil
// pointer means "leave the field unchanged".
package patch

func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
