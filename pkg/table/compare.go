package table

import (
	"strings"
	"time"
)

// ContainsFold reports whether any field contains query, ignoring case.
func ContainsFold(query string, fields ...string) bool {
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// CompareStrings orders strings case-insensitively.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareFloats orders numbers ascending.
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareInts orders integers ascending.
func CompareInts(a, b int) int {
	return CompareFloats(float64(a), float64(b))
}

// CompareTimes orders instants ascending.
func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// CompareOptionalTimes orders instants ascending with missing values last.
func CompareOptionalTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return CompareTimes(*a, *b)
}

// By adapts a key extractor and an ordering on the key into a CompareFunc.
func By[T, K any](key func(T) K, compare func(a, b K) int) CompareFunc[T] {
	return func(a, b T) int {
		return compare(key(a), key(b))
	}
}
