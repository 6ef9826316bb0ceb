package stub

import (
	"errors"
	"strings"
	"sync"
)

// The stub keeps everything in wire shape: it exists to speak the
// backend's JSON, not to model the domain again.

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSlotTaken      = errors.New("slot already booked")
	ErrBadCredentials = errors.New("invalid credentials")
)

type User struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Senha       string `json:"senha"`
	TipoUsuario int    `json:"tipoUsuario"`
}

type Service struct {
	ID          int     `json:"id"`
	TipoServico string  `json:"tiposervico"`
	Valor       float64 `json:"valor"`
}

type Appointment struct {
	ID                int
	DataAtendimento   string
	DthoraAgendamento string
	Horario           string
	FkUsuarioID       int
	FkServicoID       int
}

// AppointmentRow is the joined listing shape of GET /agendamentosUser.
// Valor is a pointer because a deleted service leaves the join empty.
type AppointmentRow struct {
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

// Store is the in-memory state behind the stub, one mutex around all of
// it since gin serves concurrently.
type Store struct {
	mu              sync.Mutex
	users           map[int]*User
	services        map[int]*Service
	appointments    map[int]*Appointment
	nextUser        int
	nextService     int
	nextAppointment int
}

func NewStore() *Store {
	return &Store{
		users:           map[int]*User{},
		services:        map[int]*Service{},
		appointments:    map[int]*Appointment{},
		nextUser:        1,
		nextService:     1,
		nextAppointment: 1,
	}
}

// --- users ---

func (s *Store) CreateUser(u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return User{}, ErrDuplicateEmail
		}
	}
	u.ID = s.nextUser
	s.nextUser++
	s.users[u.ID] = &u
	return u, nil
}

func (s *Store) ListUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, 0, len(s.users))
	for id := 1; id < s.nextUser; id++ {
		if u, ok := s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out
}

func (s *Store) UpdateUser(id int, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	u.ID = id
	s.users[id] = &u
	return nil
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) Authenticate(email, senha string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Senha == senha {
			return *u, nil
		}
	}
	return User{}, ErrBadCredentials
}

func (s *Store) ResetPassword(email, senha string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u.Senha = senha
			return nil
		}
	}
	return ErrNotFound
}

// --- services ---

func (s *Store) CreateService(svc Service) Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = s.nextService
	s.nextService++
	s.services[svc.ID] = &svc
	return svc
}

func (s *Store) ListServices() []Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Service, 0, len(s.services))
	for id := 1; id < s.nextService; id++ {
		if svc, ok := s.services[id]; ok {
			out = append(out, *svc)
		}
	}
	return out
}

func (s *Store) UpdateService(id int, svc Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	svc.ID = id
	s.services[id] = &svc
	return nil
}

// DeleteService removes the service without touching appointments that
// reference it, matching the real backend's orphan behavior.
func (s *Store) DeleteService(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	delete(s.services, id)
	return nil
}

// --- appointments ---

// CreateAppointment enforces slot uniqueness server-side as a backstop
// to the client guard.
func (s *Store) CreateAppointment(a Appointment) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slotTakenLocked(a.DataAtendimento, a.Horario, 0) {
		return Appointment{}, ErrSlotTaken
	}
	a.ID = s.nextAppointment
	s.nextAppointment++
	s.appointments[a.ID] = &a
	return a, nil
}

func (s *Store) UpdateAppointment(id int, a Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return ErrNotFound
	}
	if s.slotTakenLocked(a.DataAtendimento, a.Horario, id) {
		return ErrSlotTaken
	}
	a.ID = id
	s.appointments[id] = &a
	return nil
}

func (s *Store) DeleteAppointment(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) slotTakenLocked(date, horario string, excludeID int) bool {
	for _, a := range s.appointments {
		if a.ID == excludeID {
			continue
		}
		if a.DataAtendimento == date && a.Horario == horario {
			return true
		}
	}
	return false
}

// AppointmentsByEmail joins appointments with their user and service
// rows for one customer email.
func (s *Store) AppointmentsByEmail(email string) []AppointmentRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []AppointmentRow{}
	for id := 1; id < s.nextAppointment; id++ {
		a, ok := s.appointments[id]
		if !ok {
			continue
		}
		u, ok := s.users[a.FkUsuarioID]
		if !ok || !strings.EqualFold(u.Email, email) {
			continue
		}
		row := AppointmentRow{
			AgendamentoID:     a.ID,
			DataAtendimento:   a.DataAtendimento,
			DthoraAgendamento: a.DthoraAgendamento,
			Horario:           a.Horario,
			UsuarioID:         u.ID,
			ServicoID:         a.FkServicoID,
			UsuarioNome:       u.Nome,
			UsuarioEmail:      u.Email,
		}
		if svc, ok := s.services[a.FkServicoID]; ok {
			row.TipoServico = svc.TipoServico
			valor := svc.Valor
			row.Valor = &valor
		}
		out = append(out, row)
	}
	return out
}
