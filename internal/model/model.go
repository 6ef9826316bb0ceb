package model

import (
	"fmt"
	"strconv"
	"time"
)

// Distinct id types per entity so a user id can never be passed where
// a service id is expected.
type (
	UserID        int
	ServiceID     int
	AppointmentID int
)

func (id UserID) String() string { return strconv.Itoa(int(id)) }

func (id ServiceID) String() string { return strconv.Itoa(int(id)) }

func (id AppointmentID) String() string { return strconv.Itoa(int(id)) }

// ParseUserID decodes the string-encoded id the session store keeps.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return UserID(n), nil
}

type Role int

const (
	RoleAdmin    Role = 0
	RoleCustomer Role = 1
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleCustomer:
		return "Cliente"
	}
	return strconv.Itoa(int(r))
}

// StorageValue is the wire/storage encoding of a role ("0"/"1").
func (r Role) StorageValue() string { return strconv.Itoa(int(r)) }

// ParseRole decodes the string-encoded user type the backend and the
// session store both use ("0" admin, "1" customer).
func ParseRole(s string) (Role, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (n != 0 && n != 1) {
		return 0, fmt.Errorf("unknown user type %q", s)
	}
	return Role(n), nil
}

type User struct {
	ID       UserID
	Name     string
	Email    string
	Password string // the backend stores and returns this verbatim
	Role     Role
}

type Service struct {
	ID       ServiceID
	Category string
	Price    float64
}

// Categories a service can be filed under.
var ServiceCategories = []string{
	"Banho",
	"Tosa",
	"Castração",
	"Exames de Saúde",
	"Vacinação",
	"Limpeza Bucal",
}

// Appointment is one row of the per-user listing. ServiceDate is an ISO
// calendar date (YYYY-MM-DD) and Slot one of booking.Slots. The
// Customer*/ServiceCategory/Price fields are joined server-side and only
// present on fetched rows; Price is nil when the referenced service is gone.
type Appointment struct {
	ID          AppointmentID
	ServiceDate string
	Slot        string
	BookedAt    time.Time
	CustomerID  UserID
	ServiceID   ServiceID

	CustomerName    string
	CustomerEmail   string
	ServiceCategory string
	Price           *float64
}

// AppointmentDraft is what the client sends on insert and update.
type AppointmentDraft struct {
	ServiceDate string
	Slot        string
	BookedAt    time.Time
	CustomerID  UserID
	ServiceID   ServiceID
}
