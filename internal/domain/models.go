package domain

// Project is a single catalog entry
type Project struct {
	URL      string   `json:"url"`
	Org      string   `json:"org"`
	Stars    int      `json:"stars"`
	Released string   `json:"released"`
	Tags     []string `json:"tags"`
}

// HasTag reports whether the project carries the exact tag
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
