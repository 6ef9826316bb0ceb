package controller

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSession is returned when an operation needs a logged-in identity
// and the session is anonymous.
var ErrNoSession = errors.New("no active session")

// ErrSubmitInFlight blocks a second tap while a submission is running.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ValidationError names the required fields left blank. It is raised
// before any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "required fields missing: " + strings.Join(e.Missing, ", ")
}

// ConflictError is the slot-conflict guard tripping: the chosen day and
// time are already booked. Raised before any network call is made.
type ConflictError struct {
	ServiceDate string
	Slot        string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Slot, e.ServiceDate)
}

// requireFields collects blank values into one ValidationError, keeping
// field order stable for messages and tests.
func requireFields(names []string, values []string) error {
	var missing []string
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, names[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
