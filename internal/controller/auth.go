package controller

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"petcare-client/internal/api"
	"petcare-client/internal/model"
	"petcare-client/internal/session"
)

// ErrPasswordMismatch is the reset screen's confirm check failing.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Auth drives the login, registration, and password screens.
type Auth struct {
	client *api.Client
	sess   *session.Session
	log    *zap.Logger
}

func NewAuth(client *api.Client, sess *session.Session, log *zap.Logger) *Auth {
	return &Auth{client: client, sess: sess, log: log}
}

// Login authenticates and replaces the local session wholesale.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	err := requireFields([]string{"email", "senha"}, []string{email, password})
	if err != nil {
		return err
	}
	u, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.sess.Begin(u.ID, u.Name, u.Email, u.Role)
	return nil
}

// Register self-signs-up a customer. The account is created but the
// user still logs in afterwards, as on the mobile flow.
func (a *Auth) Register(ctx context.Context, name, email, password string) error {
	err := requireFields([]string{"nome", "email", "senha"}, []string{name, email, password})
	if err != nil {
		return err
	}
	return a.client.Register(ctx, model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleCustomer,
	})
}

func (a *Auth) ResetPassword(ctx context.Context, email, newPassword, confirm string) error {
	err := requireFields(
		[]string{"email", "nova senha", "confirmar senha"},
		[]string{email, newPassword, confirm},
	)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	return a.client.ResetPassword(ctx, email, newPassword, confirm)
}

// Logout destroys the session; the next gate evaluation is anonymous.
func (a *Auth) Logout() {
	a.sess.End()
}

// LoggedIn mirrors the login screen's startup check: a readable stored
// user type short-circuits straight to the home screen.
func (a *Auth) LoggedIn() bool {
	return a.sess.Role() != nil
}
