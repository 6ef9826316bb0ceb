package controller

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateLoadFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load-failed"
	}
	return "unknown"
}

// Endpoints binds a list controller to one entity's REST operations.
// T is the fetched row, D the insert/update payload, ID the entity's
// typed identifier.
type Endpoints[T any, D any, ID comparable] struct {
	List   func(ctx context.Context) ([]T, error)
	Insert func(ctx context.Context, draft D) error
	Update func(ctx context.Context, id ID, draft D) error
	Delete func(ctx context.Context, id ID) error
}

// List is the one fetch/filter/mutate/refetch controller behind every
// entity screen. Mutations never patch the collection in place: success
// triggers a full reload, failure leaves it untouched.
//
// A List is confined to the UI event loop that owns its screen, so it
// carries no lock.
type List[T any, D any, ID comparable] struct {
	name   string
	ep     Endpoints[T, D, ID]
	fields func(T) []string
	log    *zap.Logger

	state State
	items []T
}

// NewList builds a controller. fields extracts the display strings the
// search box matches against.
func NewList[T any, D any, ID comparable](name string, ep Endpoints[T, D, ID], fields func(T) []string, log *zap.Logger) *List[T, D, ID] {
	return &List[T, D, ID]{name: name, ep: ep, fields: fields, log: log, state: StateIdle}
}

func (l *List[T, D, ID]) State() State { return l.state }

// Items is the full loaded collection, nil before the first Load.
func (l *List[T, D, ID]) Items() []T { return l.items }

func (l *List[T, D, ID]) Count() int { return len(l.items) }

// Load hydrates the collection. On failure the previous collection is
// kept so a failed refresh does not blank the screen.
func (l *List[T, D, ID]) Load(ctx context.Context) error {
	l.state = StateLoading
	items, err := l.ep.List(ctx)
	if err != nil {
		l.state = StateLoadFailed
		l.log.Error("list fetch failed", zap.String("entity", l.name), zap.Error(err))
		return err
	}
	l.items = items
	l.state = StateLoaded
	return nil
}

// Filter returns the rows whose display fields contain query,
// case-insensitively. An empty query returns everything.
func (l *List[T, D, ID]) Filter(query string) []T {
	if query == "" {
		return l.items
	}
	q := strings.ToLower(query)
	var out []T
	for _, item := range l.items {
		for _, f := range l.fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (l *List[T, D, ID]) Insert(ctx context.Context, draft D) error {
	if err := l.ep.Insert(ctx, draft); err != nil {
		return err
	}
	return l.Load(ctx)
}

func (l *List[T, D, ID]) Update(ctx context.Context, id ID, draft D) error {
	if err := l.ep.Update(ctx, id, draft); err != nil {
		return err
	}
	return l.Load(ctx)
}

func (l *List[T, D, ID]) Delete(ctx context.Context, id ID) error {
	if err := l.ep.Delete(ctx, id); err != nil {
		return err
	}
	return l.Load(ctx)
}
