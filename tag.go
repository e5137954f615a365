package contentdir

import "sort"

// TagCounts counts every tag occurrence across items. A tag carried by N
// items has count N.
func TagCounts(items []*Item) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		for _, tag := range item.Meta.Tags {
			counts[tag]++
		}
	}
	return counts
}

// SortedTags returns the distinct keys of a tag-count mapping sorted
// lexicographically ascending.
func SortedTags(counts map[string]int) []string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FilterByTag returns the items carrying tag, preserving input order.
func FilterByTag(items []*Item, tag string) []*Item {
	out := make([]*Item, 0)
	for _, item := range items {
		if item.Meta.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}
