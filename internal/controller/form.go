package controller

import (
	"context"

	"go.uber.org/zap"
)

// Op is one of the three modal variants an entity screen owns.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
)

// Form tracks the modal visibility flags for one entity screen and
// serializes its submissions. The flags are independent booleans;
// nothing prevents two modals being flagged visible at once.
type Form struct {
	log      *zap.Logger
	visible  map[Op]bool
	inFlight bool
}

func NewForm(log *zap.Logger) *Form {
	return &Form{log: log, visible: map[Op]bool{}}
}

func (f *Form) Show(op Op) { f.visible[op] = true }

func (f *Form) Hide(op Op) { f.visible[op] = false }

func (f *Form) Visible(op Op) bool { return f.visible[op] }

// Submit runs one mutation. A submission already in flight rejects the
// new one, so a double tap cannot fire the call twice. Success closes
// the modal; failure keeps it open with the error surfaced to the
// caller.
func (f *Form) Submit(ctx context.Context, op Op, action func(context.Context) error) error {
	if f.inFlight {
		return ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if err := action(ctx); err != nil {
		f.log.Error("submission failed", zap.String("op", string(op)), zap.Error(err))
		return err
	}
	f.Hide(op)
	return nil
}
