package search

import "sort"

// SortResults sorts results by score (descending), then by command ID
// (ascending) so equal-relevance results come out in a stable order.
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Entry.ID < results[j].Entry.ID
		}
		return results[i].Score > results[j].Score
	})
}
