package deliveryfee

import (
	"slices"
	"strings"
)

// AddCity appends the trimmed name, keeping insertion order. Blank names and exact
// duplicates (case-sensitive) are ignored.
func AddCity(cities []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(cities, name) {
		return slices.Clone(cities)
	}
	return append(slices.Clone(cities), name)
}

// RemoveCity drops the city with exactly this (trimmed) name.
func RemoveCity(cities []string, name string) []string {
	name = strings.TrimSpace(name)
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
