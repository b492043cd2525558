package catalog

import "sort"

// TagSet is a read-only view of a set of selected tags
type TagSet interface {
	Len() int
	IsSelected(tag string) bool
	Tags() []string
}

// Selection is the mutable set of tags the user has toggled on
type Selection struct {
	tags map[string]struct{}
}

// NewSelection creates a selection holding the given tags
func NewSelection(tags ...string) *Selection {
	s := &Selection{tags: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		s.tags[tag] = struct{}{}
	}
	return s
}

// Toggle adds the tag if absent and removes it if present.
// Returns true when the tag is selected afterwards.
func (s *Selection) Toggle(tag string) bool {
	if _, ok := s.tags[tag]; ok {
		delete(s.tags, tag)
		return false
	}
	s.tags[tag] = struct{}{}
	return true
}

// IsSelected checks membership
func (s *Selection) IsSelected(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.tags = make(map[string]struct{})
}

// Len returns the number of selected tags
func (s *Selection) Len() int {
	return len(s.tags)
}

// Tags returns the selected tags sorted
func (s *Selection) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// retain drops every tag keep rejects
func (s *Selection) retain(keep func(string) bool) {
	for tag := range s.tags {
		if !keep(tag) {
			delete(s.tags, tag)
		}
	}
}

// TagList adapts a plain slice to TagSet, for callers such as the HTTP API
// that receive tags as a list. Duplicates are harmless.
type TagList []string

func (l TagList) Len() int { return len(l) }

func (l TagList) IsSelected(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

func (l TagList) Tags() []string { return l }
