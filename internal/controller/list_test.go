package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type pet struct {
	ID   int
	Name string
}

// fakeBackend drives a List without any HTTP in the way.
type fakeBackend struct {
	items       []pet
	listErr     error
	mutErr      error
	listCalls   int
	insertCalls int
}

func (f *fakeBackend) endpoints() Endpoints[pet, pet, int] {
	return Endpoints[pet, pet, int]{
		List: func(ctx context.Context) ([]pet, error) {
			f.listCalls++
			if f.listErr != nil {
				return nil, f.listErr
			}
			out := make([]pet, len(f.items))
			copy(out, f.items)
			return out, nil
		},
		Insert: func(ctx context.Context, p pet) error {
			f.insertCalls++
			if f.mutErr != nil {
				return f.mutErr
			}
			p.ID = len(f.items) + 1
			f.items = append(f.items, p)
			return nil
		},
		Update: func(ctx context.Context, id int, p pet) error {
			if f.mutErr != nil {
				return f.mutErr
			}
			for i := range f.items {
				if f.items[i].ID == id {
					p.ID = id
					f.items[i] = p
				}
			}
			return nil
		},
		Delete: func(ctx context.Context, id int) error {
			if f.mutErr != nil {
				return f.mutErr
			}
			for i := range f.items {
				if f.items[i].ID == id {
					f.items = append(f.items[:i], f.items[i+1:]...)
					return nil
				}
			}
			return nil
		},
	}
}

func newPetList(f *fakeBackend) *List[pet, pet, int] {
	return NewList("pets", f.endpoints(), func(p pet) []string {
		return []string{p.Name}
	}, zap.NewNop())
}

func TestListStates(t *testing.T) {
	f := &fakeBackend{items: []pet{{1, "Rex"}}}
	l := newPetList(f)

	if l.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", l.State())
	}
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.State() != StateLoaded {
		t.Errorf("state = %v, want loaded", l.State())
	}
	if l.Count() != 1 {
		t.Errorf("count = %d, want 1", l.Count())
	}
}

func TestLoadFailureKeepsPreviousItems(t *testing.T) {
	f := &fakeBackend{items: []pet{{1, "Rex"}}}
	l := newPetList(f)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	f.listErr = errors.New("boom")
	if err := l.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if l.State() != StateLoadFailed {
		t.Errorf("state = %v, want load-failed", l.State())
	}
	if l.Count() != 1 {
		t.Errorf("previous items gone: count = %d", l.Count())
	}
}

func TestFilter(t *testing.T) {
	f := &fakeBackend{items: []pet{{1, "Rex"}, {2, "Bolinha"}, {3, "rexona"}}}
	l := newPetList(f)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"rex", 2}, // case-insensitive substring
		{"REX", 2},
		{"bol", 1},
		{"zzz", 0},
	}
	for _, tt := range tests {
		if got := len(l.Filter(tt.query)); got != tt.want {
			t.Errorf("Filter(%q): %d rows, want %d", tt.query, got, tt.want)
		}
	}
}

func TestMutationTriggersRefetch(t *testing.T) {
	f := &fakeBackend{}
	l := newPetList(f)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := l.Insert(context.Background(), pet{Name: "Rex"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if f.listCalls != 2 {
		t.Errorf("list calls = %d, want 2 (initial + refetch)", f.listCalls)
	}
	if l.Count() != 1 {
		t.Errorf("count after insert = %d, want 1", l.Count())
	}
}

func TestMutationFailureLeavesCollectionUntouched(t *testing.T) {
	f := &fakeBackend{items: []pet{{1, "Rex"}}}
	l := newPetList(f)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	f.mutErr = errors.New("server said no")
	if err := l.Insert(context.Background(), pet{Name: "Bolinha"}); err == nil {
		t.Fatal("expected mutation error")
	}
	if f.listCalls != 1 {
		t.Errorf("refetch after failed mutation: list calls = %d", f.listCalls)
	}
	if l.Count() != 1 {
		t.Errorf("collection changed on failure: count = %d", l.Count())
	}
	if l.State() != StateLoaded {
		t.Errorf("state = %v, want loaded", l.State())
	}
}
