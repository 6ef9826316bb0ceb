package api

import (
	"time"

	"petcare-client/internal/model"
)

// Wire shapes. The backend speaks Portuguese field names with
// inconsistent casing between endpoints; every quirk is pinned here so
// the rest of the client only sees model types.

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Usuario wireUser `json:"usuario"`
}

type resetPasswordRequest struct {
	Email          string `json:"email"`
	NovaSenha      string `json:"novaSenha"`
	ConfirmarSenha string `json:"confirmarSenha"`
}

type wireUser struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Senha       string `json:"senha,omitempty"`
	TipoUsuario int    `json:"tipoUsuario"`
}

func (w wireUser) toModel() model.User {
	return model.User{
		ID:       model.UserID(w.ID),
		Name:     w.Nome,
		Email:    w.Email,
		Password: w.Senha,
		Role:     model.Role(w.TipoUsuario),
	}
}

func userToWire(u model.User) wireUser {
	return wireUser{
		ID:          int(u.ID),
		Nome:        u.Name,
		Email:       u.Email,
		Senha:       u.Password,
		TipoUsuario: int(u.Role),
	}
}

type wireService struct {
	ID          int     `json:"id,omitempty"`
	TipoServico string  `json:"tiposervico"`
	Valor       float64 `json:"valor"`
}

func (w wireService) toModel() model.Service {
	return model.Service{
		ID:       model.ServiceID(w.ID),
		Category: w.TipoServico,
		Price:    w.Valor,
	}
}

// wireAppointmentRow is the joined row from GET /agendamentosUser.
type wireAppointmentRow struct {
	AgendamentoID     int      `json:"agendamento_id"`
	DataAtendimento   string   `json:"dataatendimento"`
	DthoraAgendamento string   `json:"dthoraagendamento"`
	Horario           string   `json:"horario"`
	UsuarioID         int      `json:"usuario_id"`
	ServicoID         int      `json:"servico_id"`
	UsuarioNome       string   `json:"usuario_nome"`
	UsuarioEmail      string   `json:"usuario_email"`
	TipoServico       string   `json:"tiposervico"`
	Valor             *float64 `json:"valor"`
}

func (w wireAppointmentRow) toModel() model.Appointment {
	a := model.Appointment{
		ID:              model.AppointmentID(w.AgendamentoID),
		ServiceDate:     isoDate(w.DataAtendimento),
		Slot:            w.Horario,
		CustomerID:      model.UserID(w.UsuarioID),
		ServiceID:       model.ServiceID(w.ServicoID),
		CustomerName:    w.UsuarioNome,
		CustomerEmail:   w.UsuarioEmail,
		ServiceCategory: w.TipoServico,
		Price:           w.Valor,
	}
	if t, err := time.Parse(time.RFC3339, w.DthoraAgendamento); err == nil {
		a.BookedAt = t
	}
	return a
}

// isoDate trims date columns the backend returns as full timestamps.
func isoDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// insertAppointmentRequest uses camel-cased dataAtendimento...
type insertAppointmentRequest struct {
	DataAtendimento   string `json:"dataAtendimento"`
	DthoraAgendamento string `json:"dthoraAgendamento"`
	Horario           string `json:"horario"`
	FkUsuarioID       int    `json:"fk_usuario_id"`
	FkServicoID       int    `json:"fk_servico_id"`
}

// ...while the update endpoint expects the date key all lowercase.
type updateAppointmentRequest struct {
	DataAtendimento   string `json:"dataatendimento"`
	DthoraAgendamento string `json:"dthoraAgendamento"`
	Horario           string `json:"horario"`
	FkUsuarioID       int    `json:"fk_usuario_id"`
	FkServicoID       int    `json:"fk_servico_id"`
}

func draftTimestamp(d model.AppointmentDraft) string {
	if d.BookedAt.IsZero() {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return d.BookedAt.UTC().Format(time.RFC3339)
}
