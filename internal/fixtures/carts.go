package fixtures

import "github.com/cartwheel-labs/storefront-core/internal/identity"

var seedCarts = []identity.RemoteCart{
	{
		ID:     1,
		UserID: 1,
		Date:   "2026-03-02T00:00:00.000Z",
		Products: []identity.RemoteCartProduct{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 1},
			{ProductID: 3, Quantity: 6},
		},
	},
	{
		ID:     2,
		UserID: 2,
		Date:   "2026-01-15T00:00:00.000Z",
		Products: []identity.RemoteCartProduct{
			{ProductID: 9, Quantity: 1},
		},
	},
}

// Carts returns a copy of every seeded cart.
func Carts() []identity.RemoteCart {
	out := make([]identity.RemoteCart, len(seedCarts))
	copy(out, seedCarts)
	return out
}

// CartsForUser returns the carts stored against a user, possibly empty.
func CartsForUser(userID int) []identity.RemoteCart {
	out := []identity.RemoteCart{}
	for _, c := range seedCarts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}
