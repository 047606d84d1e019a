// Package pointer has helpers for values that model "unset" as nil.
package pointer

// To returns a pointer to v.
func To[T any](v T) *T { return &v }
