package enums

// AuthStatus mirrors the lifecycle of an authentication request.
type AuthStatus string

const (
	AuthStatusIdle      AuthStatus = "idle"
	AuthStatusLoading   AuthStatus = "loading"
	AuthStatusSucceeded AuthStatus = "succeeded"
	AuthStatusFailed    AuthStatus = "failed"
)

// String implements fmt.Stringer.
func (s AuthStatus) String() string {
	return string(s)
}
