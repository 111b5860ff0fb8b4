package account

import "github.com/cartwheel-labs/storefront-core/internal/identity"

// AuthPending marks the start of a sign-in or registration call.
type AuthPending struct{}

func (AuthPending) ActionType() string { return "account/authPending" }

// SetCredentials installs a signed-in user and their session token.
type SetCredentials struct {
	User  identity.User
	Token string
}

func (SetCredentials) ActionType() string { return "account/setCredentials" }

// AuthFailed records a rejected sign-in or registration. The session
// stays whatever it was; only the status and error message change.
type AuthFailed struct {
	Message string
}

func (AuthFailed) ActionType() string { return "account/authFailed" }

// ProfileUpdated replaces the signed-in user's record after a profile
// save. Ignored for anonymous sessions.
type ProfileUpdated struct {
	User identity.User
}

func (ProfileUpdated) ActionType() string { return "account/profileUpdated" }

// Logout clears the session back to anonymous. Observers treat this
// action as the signal to purge persisted session records.
type Logout struct{}

func (Logout) ActionType() string { return "account/logout" }
