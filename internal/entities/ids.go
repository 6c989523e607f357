// Package entities provides the catalog's core records: characters, items and
// monsters, and the relationship helpers shared by the engines.
package entities

// DistinctIDs collapses duplicate ids, keeping the first occurrence order
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
