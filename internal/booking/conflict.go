package booking

import "petcare-client/internal/model"

// HasConflict reports whether any appointment in existing already holds
// the (serviceDate, slot) pair. serviceDate is the ISO form. During an
// edit the record under edit is passed as excludeID so it never
// conflicts with itself; zero means no exclusion.
func HasConflict(serviceDate, slot string, existing []model.Appointment, excludeID model.AppointmentID) bool {
	for _, a := range existing {
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if a.ServiceDate == serviceDate && a.Slot == slot {
			return true
		}
	}
	return false
}
