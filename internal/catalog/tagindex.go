package catalog

import (
	"sort"

	"tagscope/internal/domain"
)

// DefaultTopTags is the number of ranked tags shown as chips
const DefaultTopTags = 5

// TagIndex maps a tag label to its occurrence count across a dataset
type TagIndex map[string]int

// TagStat is a tag together with its occurrence count
type TagStat struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// BuildTagIndex counts raw tag occurrences. A project listing the same tag
// twice contributes two.
func BuildTagIndex(projects []domain.Project) TagIndex {
	index := make(TagIndex)
	for _, p := range projects {
		for _, tag := range p.Tags {
			index[tag]++
		}
	}
	return index
}

// Count returns the occurrence count of tag, 0 if unknown
func (ix TagIndex) Count(tag string) int {
	return ix[tag]
}

// Len returns the number of distinct tags
func (ix TagIndex) Len() int {
	return len(ix)
}

// Has reports whether the tag occurs in the dataset
func (ix TagIndex) Has(tag string) bool {
	_, ok := ix[tag]
	return ok
}

// Ranked returns every tag ordered by descending count. Equal counts are
// ordered lexicographically so the ranking is deterministic.
func (ix TagIndex) Ranked() []TagStat {
	stats := make([]TagStat, 0, len(ix))
	for tag, count := range ix {
		stats = append(stats, TagStat{Tag: tag, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats
}

// TopTags returns at most n tag labels from the ranking
func TopTags(index TagIndex, n int) []string {
	if n <= 0 {
		return []string{}
	}
	ranked := index.Ranked()
	if len(ranked) < n {
		n = len(ranked)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = ranked[i].Tag
	}
	return top
}

// AllTagsSorted returns every known tag in ascending lexicographic order
func AllTagsSorted(index TagIndex) []string {
	tags := make([]string, 0, len(index))
	for tag := range index {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
