// Package catalog holds the filtering and tag-aggregation engine.
//
// The engine owns the dataset, the tag index, the selected tags and the
// search term. Every mutation recomputes the visible projects synchronously
// and hands a snapshot to the registered observers. It is not safe for
// concurrent use; callers drive it from a single goroutine (the bubbletea
// update loop) and share only the pure functions across goroutines.
package catalog

import (
	"go.uber.org/zap"

	"tagscope/internal/domain"
)

// View is a snapshot of the engine output after a recompute
type View struct {
	Projects   []domain.Project
	Total      int
	SearchTerm string
	Selected   []string
}

// Empty reports whether nothing matched
func (v View) Empty() bool {
	return len(v.Projects) == 0
}

// Observer receives the recomputed view
type Observer func(View)

// Option configures an Engine
type Option func(*Engine)

// WithTopTags sets how many ranked tags TopTags returns
func WithTopTags(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.topN = n
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type observer struct {
	id int
	fn Observer
}

// Engine computes the filtered catalog view. Projects handed in or out are
// copies; the dataset held by the engine never changes after SetDataset.
type Engine struct {
	projects   []domain.Project
	index      TagIndex
	selection  *Selection
	searchTerm string
	topN       int

	view      []domain.Project
	topTags   []string
	allTags   []string
	observers []observer
	nextObs   int

	logger *zap.Logger
}

// New creates an engine with an empty dataset
func New(opts ...Option) *Engine {
	e := &Engine{
		index:     make(TagIndex),
		selection: NewSelection(),
		topN:      DefaultTopTags,
		view:      []domain.Project{},
		topTags:   []string{},
		allTags:   []string{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDataset replaces the dataset and rebuilds the tag index. Selected tags
// that no longer occur in the dataset are dropped.
func (e *Engine) SetDataset(projects []domain.Project) {
	e.projects = cloneProjects(projects)

	e.index = BuildTagIndex(e.projects)
	e.topTags = TopTags(e.index, e.topN)
	e.allTags = AllTagsSorted(e.index)
	e.selection.retain(e.index.Has)

	e.logger.Debug("dataset indexed",
		zap.Int("projects", len(e.projects)),
		zap.Int("tags", e.index.Len()),
	)
	e.recompute()
}

// SetSearchTerm updates the free-text filter
func (e *Engine) SetSearchTerm(term string) {
	if term == e.searchTerm {
		return
	}
	e.searchTerm = term
	e.recompute()
}

// ToggleTag flips a tag in the selection and returns whether it is now selected
func (e *Engine) ToggleTag(tag string) bool {
	selected := e.selection.Toggle(tag)
	e.logger.Debug("tag toggled", zap.String("tag", tag), zap.Bool("selected", selected))
	e.recompute()
	return selected
}

// ClearTags deselects every tag
func (e *Engine) ClearTags() {
	if e.selection.Len() == 0 {
		return
	}
	e.selection.Clear()
	e.recompute()
}

// Subscribe registers an observer and returns a function that removes it.
// Observers run in subscription order.
func (e *Engine) Subscribe(fn Observer) func() {
	e.nextObs++
	id := e.nextObs
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				break
			}
		}
	}
}

// View returns a copy of the projects currently visible
func (e *Engine) View() []domain.Project {
	return cloneProjects(e.view)
}

// VisibleLen returns the number of visible projects
func (e *Engine) VisibleLen() int {
	return len(e.view)
}

// Snapshot returns the current view with its inputs
func (e *Engine) Snapshot() View {
	return View{
		Projects:   cloneProjects(e.view),
		Total:      len(e.projects),
		SearchTerm: e.searchTerm,
		Selected:   e.selection.Tags(),
	}
}

// Projects returns a copy of the full dataset
func (e *Engine) Projects() []domain.Project {
	return cloneProjects(e.projects)
}

// Len returns the size of the full dataset
func (e *Engine) Len() int {
	return len(e.projects)
}

// TopTags returns the ranked chip tags
func (e *Engine) TopTags() []string {
	return cloneStrings(e.topTags)
}

// AllTags returns every tag alphabetically
func (e *Engine) AllTags() []string {
	return cloneStrings(e.allTags)
}

// TagCount returns how often a tag occurs in the dataset
func (e *Engine) TagCount(tag string) int {
	return e.index.Count(tag)
}

// SearchTerm returns the current search term
func (e *Engine) SearchTerm() string {
	return e.searchTerm
}

// SelectedTags returns the selected tags sorted
func (e *Engine) SelectedTags() []string {
	return e.selection.Tags()
}

// IsSelected reports whether a tag is selected
func (e *Engine) IsSelected(tag string) bool {
	return e.selection.IsSelected(tag)
}

func (e *Engine) recompute() {
	e.view = FilterProjects(e.projects, e.searchTerm, e.selection)

	if len(e.observers) == 0 {
		return
	}
	for _, o := range e.observers {
		o.fn(e.Snapshot())
	}
}

func cloneStrings(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}

func cloneProjects(projects []domain.Project) []domain.Project {
	out := make([]domain.Project, len(projects))
	for i, p := range projects {
		p.Tags = cloneStrings(p.Tags)
		out[i] = p
	}
	return out
}
