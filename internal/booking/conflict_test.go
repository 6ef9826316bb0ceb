package booking

import (
	"testing"

	"petcare-client/internal/model"
)

func appts() []model.Appointment {
	return []model.Appointment{
		{ID: 1, ServiceDate: "2025-03-20", Slot: "09:00:00"},
		{ID: 2, ServiceDate: "2025-03-20", Slot: "10:00:00"},
		{ID: 3, ServiceDate: "2025-03-21", Slot: "09:00:00"},
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		slot    string
		exclude model.AppointmentID
		want    bool
	}{
		{"same day same slot", "2025-03-20", "09:00:00", 0, true},
		{"same day free slot", "2025-03-20", "11:00:00", 0, false},
		{"other day same slot", "2025-03-22", "09:00:00", 0, false},
		{"empty list slot", "2025-03-20", "12:00:00", 0, false},
		{"edit excludes itself", "2025-03-20", "09:00:00", 1, false},
		{"edit still conflicts with others", "2025-03-20", "10:00:00", 1, true},
		{"exclude id not in list", "2025-03-20", "09:00:00", 99, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(tt.date, tt.slot, appts(), tt.exclude)
			if got != tt.want {
				t.Errorf("HasConflict(%s, %s, exclude=%d) = %v, want %v",
					tt.date, tt.slot, tt.exclude, got, tt.want)
			}
		})
	}
}

func TestHasConflictEmpty(t *testing.T) {
	if HasConflict("2025-03-20", "09:00:00", nil, 0) {
		t.Fatal("expected no conflict against empty list")
	}
}
