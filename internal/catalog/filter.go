package catalog

import (
	"strings"

	"tagscope/internal/domain"
)

// MatchesSearch checks if a project matches the search term. The term is
// compared case-insensitively against the url, the org and every tag.
func MatchesSearch(p domain.Project, term string) bool {
	if term == "" {
		return true
	}
	return matchesLowered(p, strings.ToLower(term))
}

func matchesLowered(p domain.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.URL), query) ||
		strings.Contains(strings.ToLower(p.Org), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// MatchesTags checks that the project carries every selected tag.
// An empty selection matches everything.
func MatchesTags(p domain.Project, selected TagSet) bool {
	if selected == nil || selected.Len() == 0 {
		return true
	}
	return hasAll(p, selected.Tags())
}

func hasAll(p domain.Project, tags []string) bool {
	for _, tag := range tags {
		if !p.HasTag(tag) {
			return false
		}
	}
	return true
}

// FilterProjects returns the projects matching both the search term and the
// selected tags, in their original order.
func FilterProjects(projects []domain.Project, term string, selected TagSet) []domain.Project {
	query := strings.ToLower(term)
	var tags []string
	if selected != nil {
		tags = selected.Tags()
	}

	result := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if query != "" && !matchesLowered(p, query) {
			continue
		}
		if !hasAll(p, tags) {
			continue
		}
		result = append(result, p)
	}
	return result
}
