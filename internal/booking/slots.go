package booking

import (
	"fmt"
	"time"
)

// Slots is the fixed catalog of bookable times. The backend stores them
// as HH:MM:SS strings and compares them verbatim, so order and format
// matter.
var Slots = []string{
	"08:00:00",
	"09:00:00",
	"10:00:00",
	"11:00:00",
	"12:00:00",
}

func ValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

const (
	displayLayout = "02/01/2006"
	isoLayout     = "2006-01-02"
)

// NormalizeDate converts the display format (DD/MM/YYYY) to the ISO
// ordering the API expects.
func NormalizeDate(display string) (string, error) {
	t, err := time.Parse(displayLayout, display)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected DD/MM/YYYY", display)
	}
	return t.Format(isoLayout), nil
}

// DisplayDate renders a stored date back to DD/MM/YYYY. The backend
// sometimes returns a full timestamp for date columns, so anything after
// the first ten characters is ignored.
func DisplayDate(iso string) string {
	if len(iso) > len(isoLayout) {
		iso = iso[:len(isoLayout)]
	}
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}
