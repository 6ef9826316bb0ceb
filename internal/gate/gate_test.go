package gate

import (
	"testing"

	"petcare-client/internal/model"
)

func roleOf(t *testing.T, stored string) *model.Role {
	t.Helper()
	r, err := model.ParseRole(stored)
	if err != nil {
		t.Fatalf("ParseRole(%q): %v", stored, err)
	}
	return &r
}

func equalScreens(a []Screen, b []Screen) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScreens(t *testing.T) {
	tests := []struct {
		name string
		role *model.Role
		want []Screen
	}{
		{
			"admin",
			roleOf(t, "0"),
			[]Screen{ScreenHome, ScreenUsers, ScreenAppointments, ScreenServices, ScreenPasswordReset, ScreenLogout},
		},
		{
			"customer",
			roleOf(t, "1"),
			[]Screen{ScreenHome, ScreenMyAppointments, ScreenPasswordReset, ScreenLogout},
		},
		{
			"anonymous",
			nil,
			[]Screen{ScreenHome, ScreenLogin, ScreenRegister},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Screens(tt.role)
			if !equalScreens(got, tt.want) {
				t.Errorf("Screens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReachable(t *testing.T) {
	admin := roleOf(t, "0")
	customer := roleOf(t, "1")

	if Reachable(nil, ScreenUsers) {
		t.Error("anonymous should not reach user management")
	}
	if Reachable(customer, ScreenUsers) {
		t.Error("customer should not reach user management")
	}
	if !Reachable(admin, ScreenUsers) {
		t.Error("admin should reach user management")
	}
	if !Reachable(customer, ScreenMyAppointments) {
		t.Error("customer should reach own appointments")
	}
	if Reachable(admin, ScreenLogin) {
		t.Error("a logged-in admin should not see login")
	}
}
