package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestFormSubmitClosesModalOnSuccess(t *testing.T) {
	f := NewForm(zap.NewNop())
	f.Show(OpAdd)

	err := f.Submit(context.Background(), OpAdd, func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.Visible(OpAdd) {
		t.Error("modal still visible after successful submit")
	}
}

func TestFormSubmitKeepsModalOnFailure(t *testing.T) {
	f := NewForm(zap.NewNop())
	f.Show(OpEdit)

	boom := errors.New("boom")
	err := f.Submit(context.Background(), OpEdit, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !f.Visible(OpEdit) {
		t.Error("modal closed despite failure")
	}
}

func TestFormRejectsReentrantSubmit(t *testing.T) {
	f := NewForm(zap.NewNop())
	f.Show(OpAdd)

	var inner error
	err := f.Submit(context.Background(), OpAdd, func(ctx context.Context) error {
		// a second tap landing while the first submission runs
		inner = f.Submit(ctx, OpAdd, func(context.Context) error { return nil })
		return nil
	})
	if err != nil {
		t.Fatalf("outer submit: %v", err)
	}
	if !errors.Is(inner, ErrSubmitInFlight) {
		t.Fatalf("inner submit = %v, want ErrSubmitInFlight", inner)
	}
}

func TestFormFlagsAreIndependent(t *testing.T) {
	f := NewForm(zap.NewNop())
	f.Show(OpAdd)
	f.Show(OpDelete)
	if !f.Visible(OpAdd) || !f.Visible(OpDelete) {
		t.Fatal("flags should be independent booleans")
	}
	f.Hide(OpAdd)
	if f.Visible(OpAdd) || !f.Visible(OpDelete) {
		t.Fatal("hiding one flag must not touch the others")
	}
}

func TestRequireFields(t *testing.T) {
	err := requireFields(
		[]string{"nome", "email", "senha"},
		[]string{"Maria", "", "   "},
	)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Missing) != 2 || ve.Missing[0] != "email" || ve.Missing[1] != "senha" {
		t.Errorf("missing = %v", ve.Missing)
	}

	if err := requireFields([]string{"nome"}, []string{"Maria"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
