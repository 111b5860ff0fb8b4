package fixtures

import (
	"sync"

	"github.com/cartwheel-labs/storefront-core/internal/identity"
)

// UserStore is the mock API's mutable user directory, seeded with a
// couple of known accounts. Safe for concurrent handlers.
type UserStore struct {
	mu     sync.RWMutex
	users  []identity.User
	nextID int
}

// NewUserStore returns a directory seeded with the demo accounts.
func NewUserStore() *UserStore {
	seed := []identity.User{
		{
			ID:       1,
			Username: "johnd",
			Password: "m38rmF$",
			Email:    "john@example.com",
			Name:     identity.Name{Firstname: "John", Lastname: "Doe"},
			Phone:    "5551234567",
			Address: identity.Address{
				City:    "Kilcoole",
				Street:  "new road",
				Number:  7682,
				Zipcode: "12926",
				Geolocation: identity.Geolocation{
					Lat:  "-37.3159",
					Long: "81.1496",
				},
			},
		},
		{
			ID:       2,
			Username: "mor_2314",
			Password: "83r5^_",
			Email:    "morrison@example.com",
			Name:     identity.Name{Firstname: "David", Lastname: "Morrison"},
			Phone:    "5559876543",
			Address: identity.Address{
				City:    "Kilcoole",
				Street:  "Lovers Ln",
				Number:  7267,
				Zipcode: "12926",
			},
		},
	}
	return &UserStore{users: seed, nextID: len(seed) + 1}
}

// List returns the users matching the given filters. Empty filters
// match everyone; credential checks pass both.
func (s *UserStore) List(username, password string) []identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []identity.User{}
	for _, u := range s.users {
		if username != "" && u.Username != username {
			continue
		}
		if password != "" && u.Password != password {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Get returns the user with the given id.
func (s *UserStore) Get(id int) (identity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return identity.User{}, false
}

// Create stores a new user and assigns the next id.
func (s *UserStore) Create(u identity.User) identity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// Update replaces the record with the given id. Returns false when the
// user does not exist.
func (s *UserStore) Update(id int, u identity.User) (identity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u.ID = id
			s.users[i] = u
			return u, true
		}
	}
	return identity.User{}, false
}
