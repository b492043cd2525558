// Package loader fetches the catalog JSON once at startup.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tagscope/internal/domain"
	"tagscope/internal/eventbus"
)

// ErrUnexpectedStatus is returned for non-2xx responses
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Loader fetches the project list from a URL or a local file
type Loader struct {
	source string
	client *http.Client
	bus    eventbus.EventBus
	logger *zap.Logger

	mu        sync.Mutex
	isLoading bool
	wg        sync.WaitGroup
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithBus makes Start publish load events
func WithBus(bus eventbus.EventBus) Option {
	return func(l *Loader) {
		l.bus = bus
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader for source, which is an http(s) URL, a file:// URL
// or a plain filesystem path.
func New(source string, opts ...Option) *Loader {
	l := &Loader{
		source: source,
		client: http.DefaultClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.Named("loader")
	return l
}

// Source returns the configured source
func (l *Loader) Source() string {
	return l.source
}

// Fetch loads and decodes the catalog
func (l *Loader) Fetch(ctx context.Context) ([]domain.Project, error) {
	if isRemote(l.source) {
		return l.fetchHTTP(ctx)
	}
	return l.readFile()
}

// Start fetches in the background. Success publishes DatasetLoadedEvent;
// failure is logged and published as DatasetLoadFailedEvent, and the caller
// keeps its empty dataset. Nothing is retried.
func (l *Loader) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	l.isLoading = true
	l.mu.Unlock()

	l.publish(eventbus.DatasetLoadStartedEvent{Source: l.source})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			l.isLoading = false
			l.mu.Unlock()
		}()

		start := time.Now()
		projects, err := l.Fetch(ctx)
		if err != nil {
			l.logger.Error("error fetching data",
				zap.String("source", l.source),
				zap.Error(err),
			)
			l.publish(eventbus.DatasetLoadFailedEvent{Source: l.source, Err: err})
			return
		}

		l.logger.Info("catalog loaded",
			zap.String("source", l.source),
			zap.Int("projects", len(projects)),
			zap.Duration("duration", time.Since(start)),
		)
		l.publish(eventbus.DatasetLoadedEvent{Source: l.source, Projects: projects})
	}()

	return nil
}

// Wait blocks until a fetch started by Start has finished
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) publish(event eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]domain.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", l.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return decode(resp.Body, l.logger)
}

func (l *Loader) readFile() ([]domain.Project, error) {
	path := strings.TrimPrefix(l.source, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return decode(f, l.logger)
}

// Decode reads a JSON array of projects. Only a syntax error or a top-level
// value that is not an array fails; see decode for how records are coerced.
func Decode(r io.Reader) ([]domain.Project, error) {
	return decode(r, zap.NewNop())
}

// decode keeps every record it can. Fields of the wrong JSON type are coerced
// where a reading exists ("stars": 12.0, "released": 2023) and left zero
// otherwise. Elements that are not objects are skipped.
func decode(r io.Reader, logger *zap.Logger) ([]domain.Project, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	projects := make([]domain.Project, 0, len(records))
	for i, raw := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			logger.Warn("skipping catalog record", zap.Int("index", i), zap.String("record", string(raw)))
			continue
		}

		p := domain.Project{
			URL:      lenientString(fields["url"]),
			Org:      lenientString(fields["org"]),
			Stars:    lenientInt(fields["stars"]),
			Released: lenientString(fields["released"]),
			Tags:     lenientTags(fields["tags"]),
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// lenientString accepts a string, or the literal text of a number or bool
func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case float64, bool:
		return string(raw)
	}
	return ""
}

// lenientInt accepts any JSON number or a numeric string, truncated to int
func lenientInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		n = json.Number(strings.TrimSpace(s))
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return int(f)
	}
	return 0
}

// lenientTags keeps the string-like elements of an array; anything else is no tags
func lenientTags(raw json.RawMessage) []string {
	tags := []string{}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return tags
	}
	for _, item := range items {
		var v any
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		switch t := v.(type) {
		case string:
			tags = append(tags, t)
		case float64, bool:
			tags = append(tags, string(item))
		}
	}
	return tags
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
