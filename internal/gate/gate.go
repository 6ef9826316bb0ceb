package gate

import "petcare-client/internal/model"

// Screen names a navigation destination.
type Screen string

const (
	ScreenHome           Screen = "home"
	ScreenLogin          Screen = "login"
	ScreenRegister       Screen = "register"
	ScreenUsers          Screen = "users"
	ScreenAppointments   Screen = "appointments"
	ScreenServices       Screen = "services"
	ScreenMyAppointments Screen = "my-appointments"
	ScreenPasswordReset  Screen = "password-reset"
	ScreenLogout         Screen = "logout"
)

// Screens returns the navigation entries reachable for a role, nil role
// meaning anonymous. Evaluated on demand from the stored session; a role
// change elsewhere only takes effect on the next evaluation.
func Screens(role *model.Role) []Screen {
	if role == nil {
		return []Screen{ScreenHome, ScreenLogin, ScreenRegister}
	}
	switch *role {
	case model.RoleAdmin:
		return []Screen{
			ScreenHome,
			ScreenUsers,
			ScreenAppointments,
			ScreenServices,
			ScreenPasswordReset,
			ScreenLogout,
		}
	case model.RoleCustomer:
		return []Screen{
			ScreenHome,
			ScreenMyAppointments,
			ScreenPasswordReset,
			ScreenLogout,
		}
	}
	return []Screen{ScreenHome, ScreenLogin, ScreenRegister}
}

// Reachable reports whether a single screen is allowed for the role.
func Reachable(role *model.Role, s Screen) bool {
	for _, allowed := range Screens(role) {
		if allowed == s {
			return true
		}
	}
	return false
}
