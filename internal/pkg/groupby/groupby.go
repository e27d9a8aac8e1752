// Package groupby provides a generic grouping primitive.
package groupby

// ByKey partitions items by the key derived from each element. Within each
// group the original encounter order is preserved. Keys() returns the
// distinct keys in first-seen order so iteration stays deterministic.
func ByKey[T any, K comparable](items []T, key func(T) K) *Groups[T, K] {
	g := &Groups[T, K]{groups: make(map[K][]T)}
	for _, item := range items {
		k := key(item)
		if _, seen := g.groups[k]; !seen {
			g.order = append(g.order, k)
		}
		g.groups[k] = append(g.groups[k], item)
	}
	return g
}

// Groups is the result of a ByKey partition.
type Groups[T any, K comparable] struct {
	groups map[K][]T
	order  []K
}

// Get returns the group for k in encounter order; nil when no element
// produced that key.
func (g *Groups[T, K]) Get(k K) []T {
	return g.groups[k]
}

// Keys returns the distinct keys in first-seen order.
func (g *Groups[T, K]) Keys() []K {
	keys := make([]K, len(g.order))
	copy(keys, g.order)
	return keys
}

// Len returns the number of distinct groups.
func (g *Groups[T, K]) Len() int {
	return len(g.groups)
}
