package controller

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"petcare-client/internal/api"
	"petcare-client/internal/booking"
	"petcare-client/internal/model"
	"petcare-client/internal/session"
)

// AppointmentScreen is the "Meus Agendamentos" screen: the joined
// appointment list for the logged-in user plus its add/edit/delete
// modals and the slot-conflict guard.
type AppointmentScreen struct {
	List *List[model.Appointment, model.AppointmentDraft, model.AppointmentID]
	Form *Form

	sess *session.Session
}

func NewAppointmentScreen(client *api.Client, sess *session.Session, log *zap.Logger) *AppointmentScreen {
	ep := Endpoints[model.Appointment, model.AppointmentDraft, model.AppointmentID]{
		List: func(ctx context.Context) ([]model.Appointment, error) {
			email, ok := sess.UserEmail()
			if !ok {
				return nil, ErrNoSession
			}
			return client.ListAppointments(ctx, email)
		},
		Insert: client.InsertAppointment,
		Update: client.UpdateAppointment,
		Delete: client.DeleteAppointment,
	}
	return &AppointmentScreen{
		List: NewList("appointments", ep, appointmentFields, log),
		Form: NewForm(log),
		sess: sess,
	}
}

// appointmentFields mirrors the search box: date, customer name and
// email, service type, and the price rendered as text.
func appointmentFields(a model.Appointment) []string {
	fields := []string{a.ServiceDate, a.CustomerName, a.ServiceCategory, a.CustomerEmail}
	if a.Price != nil {
		fields = append(fields, strconv.FormatFloat(*a.Price, 'f', 2, 64))
	}
	return fields
}

// AppointmentForm holds the booking inputs in display format: the date
// as the widgets produce it (DD/MM/YYYY) and the slot verbatim.
type AppointmentForm struct {
	Date      string
	Slot      string
	ServiceID model.ServiceID
}

// draft validates, normalizes the date to the API ordering, and attaches
// the session's user id as the customer foreign key.
func (s *AppointmentScreen) draft(form AppointmentForm) (model.AppointmentDraft, error) {
	err := requireFields(
		[]string{"data de atendimento", "horário", "serviço"},
		[]string{form.Date, form.Slot, nonZero(int(form.ServiceID))},
	)
	if err != nil {
		return model.AppointmentDraft{}, err
	}

	serviceDate, err := booking.NormalizeDate(form.Date)
	if err != nil {
		return model.AppointmentDraft{}, &ValidationError{Missing: []string{"data de atendimento"}}
	}
	if !booking.ValidSlot(form.Slot) {
		return model.AppointmentDraft{}, &ValidationError{Missing: []string{"horário"}}
	}

	userID, ok := s.sess.UserID()
	if !ok {
		return model.AppointmentDraft{}, ErrNoSession
	}

	return model.AppointmentDraft{
		ServiceDate: serviceDate,
		Slot:        form.Slot,
		BookedAt:    time.Now().UTC(),
		CustomerID:  userID,
		ServiceID:   form.ServiceID,
	}, nil
}

// SubmitAdd books a new appointment. Validation and the conflict guard
// both run before any network call.
func (s *AppointmentScreen) SubmitAdd(ctx context.Context, form AppointmentForm) error {
	draft, err := s.draft(form)
	if err != nil {
		return err
	}
	if booking.HasConflict(draft.ServiceDate, draft.Slot, s.List.Items(), 0) {
		return &ConflictError{ServiceDate: draft.ServiceDate, Slot: draft.Slot}
	}
	return s.Form.Submit(ctx, OpAdd, func(ctx context.Context) error {
		return s.List.Insert(ctx, draft)
	})
}

// SubmitEdit rebooks an existing appointment, excluding it from its own
// conflict check.
func (s *AppointmentScreen) SubmitEdit(ctx context.Context, id model.AppointmentID, form AppointmentForm) error {
	draft, err := s.draft(form)
	if err != nil {
		return err
	}
	if booking.HasConflict(draft.ServiceDate, draft.Slot, s.List.Items(), id) {
		return &ConflictError{ServiceDate: draft.ServiceDate, Slot: draft.Slot}
	}
	return s.Form.Submit(ctx, OpEdit, func(ctx context.Context) error {
		return s.List.Update(ctx, id, draft)
	})
}

func (s *AppointmentScreen) SubmitDelete(ctx context.Context, id model.AppointmentID) error {
	return s.Form.Submit(ctx, OpDelete, func(ctx context.Context) error {
		return s.List.Delete(ctx, id)
	})
}

// nonZero feeds an id through the blank-field check: zero means the
// picker was never touched.
func nonZero(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
