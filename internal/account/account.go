// Package account holds the session slice: the signed-in user, the
// session token and the auth request lifecycle.
package account

import (
	"encoding/json"

	"github.com/cartwheel-labs/storefront-core/internal/identity"
	"github.com/cartwheel-labs/storefront-core/pkg/enums"
)

// State is the account slice. The zero value is an anonymous session.
type State struct {
	User   *identity.User   `json:"user"`
	Token  string           `json:"token"`
	Status enums.AuthStatus `json:"status"`
	Error  string           `json:"error,omitempty"`
}

// Authenticated reports whether a user is signed in. Both the user
// record and the token must be present; a stale token without a user
// does not count.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// UserSnapshot serializes the signed-in user for the persistence
// gateway. Returns nil for an anonymous session.
func (s State) UserSnapshot() ([]byte, error) {
	if s.User == nil {
		return nil, nil
	}
	return json.Marshal(s.User)
}

// FromSnapshot rebuilds account state from persisted user and token
// records. Auth status is derived, not persisted: a restored session is
// either succeeded or idle, never loading.
func FromSnapshot(userData []byte, token string) (State, error) {
	if len(userData) == 0 || token == "" {
		return State{Status: enums.AuthStatusIdle}, nil
	}
	var user identity.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return State{Status: enums.AuthStatusIdle}, err
	}
	return State{User: &user, Token: token, Status: enums.AuthStatusSucceeded}, nil
}
