package webshell

// View is a typed page identifier. Navigation is in-memory: the shell has
// no URL or history integration.
type View string

const (
	ViewHome          View = "Home"
	ViewEvents        View = "Events"
	ViewEventDetail   View = "EventDetail"
	ViewRegister      View = "Register"
	ViewLogin         View = "Login"
	ViewAdmin         View = "Admin"
	ViewUserDashboard View = "UserDashboard"
)

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewEvents, ViewEventDetail, ViewRegister, ViewLogin, ViewAdmin, ViewUserDashboard:
		return true
	}
	return false
}
