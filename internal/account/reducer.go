package account

import "github.com/cartwheel-labs/storefront-core/pkg/enums"

// Reduce applies account actions. Unrecognized actions return the state
// unchanged.
func Reduce(s State, action any) State {
	switch a := action.(type) {
	case AuthPending:
		s.Status = enums.AuthStatusLoading
		s.Error = ""
		return s

	case SetCredentials:
		user := a.User
		return State{User: &user, Token: a.Token, Status: enums.AuthStatusSucceeded}

	case AuthFailed:
		s.Status = enums.AuthStatusFailed
		s.Error = a.Message
		return s

	case ProfileUpdated:
		if s.User == nil {
			return s
		}
		user := a.User
		s.User = &user
		return s

	case Logout:
		return State{Status: enums.AuthStatusIdle}
	}
	return s
}
