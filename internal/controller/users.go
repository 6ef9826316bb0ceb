package controller

import (
	"context"

	"go.uber.org/zap"

	"petcare-client/internal/api"
	"petcare-client/internal/model"
)

// UserScreen is the admin user management screen.
type UserScreen struct {
	List *List[model.User, model.User, model.UserID]
	Form *Form
}

func NewUserScreen(client *api.Client, log *zap.Logger) *UserScreen {
	ep := Endpoints[model.User, model.User, model.UserID]{
		List:   client.ListUsers,
		Insert: client.Register,
		Update: client.UpdateUser,
		Delete: client.DeleteUser,
	}
	return &UserScreen{
		List: NewList("users", ep, userFields, log),
		Form: NewForm(log),
	}
}

// The admin list searches across the password and the role digit too,
// matching what the cards render.
func userFields(u model.User) []string {
	return []string{u.Name, u.Email, u.Password, u.Role.StorageValue()}
}

type UserForm struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

func (f UserForm) draft() (model.User, error) {
	err := requireFields(
		[]string{"nome", "email", "senha"},
		[]string{f.Name, f.Email, f.Password},
	)
	if err != nil {
		return model.User{}, err
	}
	return model.User{Name: f.Name, Email: f.Email, Password: f.Password, Role: f.Role}, nil
}

func (s *UserScreen) SubmitAdd(ctx context.Context, form UserForm) error {
	draft, err := form.draft()
	if err != nil {
		return err
	}
	return s.Form.Submit(ctx, OpAdd, func(ctx context.Context) error {
		return s.List.Insert(ctx, draft)
	})
}

func (s *UserScreen) SubmitEdit(ctx context.Context, id model.UserID, form UserForm) error {
	draft, err := form.draft()
	if err != nil {
		return err
	}
	draft.ID = id
	return s.Form.Submit(ctx, OpEdit, func(ctx context.Context) error {
		return s.List.Update(ctx, id, draft)
	})
}

func (s *UserScreen) SubmitDelete(ctx context.Context, id model.UserID) error {
	return s.Form.Submit(ctx, OpDelete, func(ctx context.Context) error {
		return s.List.Delete(ctx, id)
	})
}
