package booking

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		display string
		want    string
	}{
		{"20/03/2025", "2025-03-20"},
		{"01/01/2026", "2026-01-01"},
		{"31/12/2024", "2024-12-31"},
	}
	for _, c := range cases {
		got, err := NormalizeDate(c.display)
		if err != nil {
			t.Fatalf("NormalizeDate(%q): %v", c.display, err)
		}
		if got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", c.display, got, c.want)
		}
	}
}

func TestNormalizeDateInvalid(t *testing.T) {
	for _, bad := range []string{"", "2025-03-20", "32/01/2025", "20/13/2025", "not a date"} {
		if _, err := NormalizeDate(bad); err == nil {
			t.Errorf("NormalizeDate(%q): expected error", bad)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	cases := []struct {
		iso  string
		want string
	}{
		{"2025-03-20", "20/03/2025"},
		{"2025-03-20T00:00:00.000Z", "20/03/2025"}, // timestamp-shaped date column
		{"garbage", ""},
	}
	for _, c := range cases {
		if got := DisplayDate(c.iso); got != c.want {
			t.Errorf("DisplayDate(%q) = %q, want %q", c.iso, got, c.want)
		}
	}
}

func TestValidSlot(t *testing.T) {
	for _, s := range Slots {
		if !ValidSlot(s) {
			t.Errorf("catalog slot %q reported invalid", s)
		}
	}
	for _, bad := range []string{"", "08:00", "13:00:00", "8:00:00"} {
		if ValidSlot(bad) {
			t.Errorf("ValidSlot(%q) = true", bad)
		}
	}
}
