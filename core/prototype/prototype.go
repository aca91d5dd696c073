// Package prototype defines the clone capability used to derive new values
// from existing ones. Clone policy is deliberate and per type: a type decides
// whether its Clone is deep or shallow and documents the choice. Deep clones
// share no mutable state with the source; shallow clones alias nested
// references, so mutations through either handle stay visible in both.
package prototype

// Cloner is implemented by values that can produce a copy of themselves.
// Whether the copy is deep or shallow is part of the implementing type's
// contract, not of this interface.
type Cloner[T any] interface {
	Clone() T
}

// CloneSlice deep-copies a slice of cloneable values.
func CloneSlice[T Cloner[T]](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.Clone()
	}
	return out
}

// CopySlice copies a slice of plain values. The elements themselves are not
// cloned, so this is only a deep copy for value types without references.
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// CopyMap copies a map of plain values, with the same caveat as CopySlice.
func CopyMap[K comparable, V any](src map[K]V) map[K]V {
	if src == nil {
		return nil
	}
	out := make(map[K]V, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
