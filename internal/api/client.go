package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petcare-client/internal/model"
)

// Client is the thin REST wrapper every controller talks through. One
// request, one result: no retry, no auth header, no timeout beyond what
// the caller's context imposes.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
		log:  log,
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.New().String()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed",
			zap.String("op", op),
			zap.String("requestId", reqID),
			zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServerError{Op: op, Status: resp.StatusCode, Message: errorMessage(resp)}
		c.log.Error("server rejected request",
			zap.String("op", op),
			zap.String("requestId", reqID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", se.Message))
		return se
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// errorMessage pulls the backend's error text out of a failure payload.
// Both {"error": ...} and {"message": ...} appear in the wild.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// --- auth ---

func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	var out loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/usuarios/login", nil,
		loginRequest{Email: email, Senha: password}, &out)
	if err != nil {
		return model.User{}, err
	}
	return out.Usuario.toModel(), nil
}

// Register creates an account. Self-signup always sends the customer
// role; the admin user screen reuses this endpoint with an explicit role.
func (c *Client) Register(ctx context.Context, u model.User) error {
	w := userToWire(u)
	w.ID = 0
	return c.do(ctx, "register", http.MethodPost, "/usuario/inserir", nil, w, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, newPassword, confirm string) error {
	return c.do(ctx, "reset password", http.MethodPut, "/usuarios/redefinir-senha", nil,
		resetPasswordRequest{Email: email, NovaSenha: newPassword, ConfirmarSenha: confirm}, nil)
}

// --- users ---

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var rows []wireUser
	if err := c.do(ctx, "list users", http.MethodGet, "/usuarios", nil, nil, &rows); err != nil {
		return nil, err
	}
	users := make([]model.User, len(rows))
	for i, r := range rows {
		users[i] = r.toModel()
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, id model.UserID, u model.User) error {
	return c.do(ctx, "update user", http.MethodPut, "/usuarios/atualizar/"+id.String(), nil,
		userToWire(u), nil)
}

func (c *Client) DeleteUser(ctx context.Context, id model.UserID) error {
	return c.do(ctx, "delete user", http.MethodDelete, "/usuario/deletar/"+id.String(), nil, nil, nil)
}

// --- services ---

func (c *Client) ListServices(ctx context.Context) ([]model.Service, error) {
	var rows []wireService
	if err := c.do(ctx, "list services", http.MethodGet, "/servicos", nil, nil, &rows); err != nil {
		return nil, err
	}
	services := make([]model.Service, len(rows))
	for i, r := range rows {
		services[i] = r.toModel()
	}
	return services, nil
}

func (c *Client) InsertService(ctx context.Context, s model.Service) error {
	return c.do(ctx, "insert service", http.MethodPost, "/servico/inserir", nil,
		wireService{TipoServico: s.Category, Valor: s.Price}, nil)
}

func (c *Client) UpdateService(ctx context.Context, id model.ServiceID, s model.Service) error {
	return c.do(ctx, "update service", http.MethodPut, "/servico/atualizar/"+id.String(), nil,
		wireService{TipoServico: s.Category, Valor: s.Price}, nil)
}

func (c *Client) DeleteService(ctx context.Context, id model.ServiceID) error {
	return c.do(ctx, "delete service", http.MethodDelete, "/servico/deletar/"+id.String(), nil, nil, nil)
}

// --- appointments ---

// ListAppointments fetches the joined per-user rows for one email.
func (c *Client) ListAppointments(ctx context.Context, email string) ([]model.Appointment, error) {
	q := url.Values{"email": []string{email}}
	var rows []wireAppointmentRow
	if err := c.do(ctx, "list appointments", http.MethodGet, "/agendamentosUser", q, nil, &rows); err != nil {
		return nil, err
	}
	appointments := make([]model.Appointment, len(rows))
	for i, r := range rows {
		appointments[i] = r.toModel()
	}
	return appointments, nil
}

func (c *Client) InsertAppointment(ctx context.Context, d model.AppointmentDraft) error {
	return c.do(ctx, "insert appointment", http.MethodPost, "/agendamento/inserir", nil,
		insertAppointmentRequest{
			DataAtendimento:   d.ServiceDate,
			DthoraAgendamento: draftTimestamp(d),
			Horario:           d.Slot,
			FkUsuarioID:       int(d.CustomerID),
			FkServicoID:       int(d.ServiceID),
		}, nil)
}

func (c *Client) UpdateAppointment(ctx context.Context, id model.AppointmentID, d model.AppointmentDraft) error {
	return c.do(ctx, "update appointment", http.MethodPut, "/agendamento/atualizar/"+id.String(), nil,
		updateAppointmentRequest{
			DataAtendimento:   d.ServiceDate,
			DthoraAgendamento: draftTimestamp(d),
			Horario:           d.Slot,
			FkUsuarioID:       int(d.CustomerID),
			FkServicoID:       int(d.ServiceID),
		}, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, id model.AppointmentID) error {
	return c.do(ctx, "delete appointment", http.MethodDelete, "/agendamento/deletar/"+id.String(), nil, nil, nil)
}
