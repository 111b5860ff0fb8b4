package store

import (
	"context"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/catalog"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
)

// IdentityClient is the slice of the identity API the store bindings
// need.
type IdentityClient interface {
	Login(ctx context.Context, username, password string) (*identity.User, string, error)
	CreateUser(ctx context.Context, input identity.User) (*identity.User, error)
	UpdateUser(ctx context.Context, id int, input identity.User) (*identity.User, error)
	UserCart(ctx context.Context, userID int) (*identity.RemoteCart, error)
}

// CatalogClient is the slice of the catalog API the store bindings
// need.
type CatalogClient interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}

type loginResult struct {
	user  *identity.User
	token string
}

// Login drives the sign-in lifecycle: pending, then credentials or a
// failure message. The signed-in user is returned for convenience.
func Login(ctx context.Context, s *Store, client IdentityClient, username, password string) (*identity.User, error) {
	result, err := Run(ctx, s, "identity.login",
		account.AuthPending{},
		func(ctx context.Context) (loginResult, error) {
			user, token, err := client.Login(ctx, username, password)
			return loginResult{user: user, token: token}, err
		},
		func(r loginResult) Action {
			return account.SetCredentials{User: *r.user, Token: r.token}
		},
		func(err error) Action {
			return account.AuthFailed{Message: PublicMessage(err)}
		},
	)
	if err != nil {
		return nil, err
	}
	return result.user, nil
}

// Register drives the account creation lifecycle. The API hands back
// the stored record; the new user is signed in with a token derived
// from the submitted credentials.
func Register(ctx context.Context, s *Store, client IdentityClient, input identity.User) (*identity.User, error) {
	password := input.Password
	created, err := Run(ctx, s, "identity.register",
		account.AuthPending{},
		func(ctx context.Context) (*identity.User, error) {
			return client.CreateUser(ctx, input)
		},
		func(user *identity.User) Action {
			return account.SetCredentials{User: *user, Token: identity.Token(user.Username, password)}
		},
		func(err error) Action {
			return account.AuthFailed{Message: PublicMessage(err)}
		},
	)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SaveProfile pushes a profile edit to the identity API and installs
// the stored record on success. No pending action: profile saves do not
// flip the auth status.
func SaveProfile(ctx context.Context, s *Store, client IdentityClient, input identity.User) (*identity.User, error) {
	updated, err := Run(ctx, s, "identity.updateProfile",
		nil,
		func(ctx context.Context) (*identity.User, error) {
			return client.UpdateUser(ctx, input.ID, input)
		},
		func(user *identity.User) Action {
			return account.ProfileUpdated{User: *user}
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ImportRemoteCart merges the signed-in user's server-side cart into
// the local one, summing quantities line by line. Users without a
// stored cart are a no-op, not an error. Lines whose product can no
// longer be resolved are skipped.
func ImportRemoteCart(ctx context.Context, s *Store, idClient IdentityClient, catClient CatalogClient) error {
	state := s.GetState()
	if !state.Account.Authenticated() {
		return nil
	}

	remote, err := idClient.UserCart(ctx, state.Account.User.ID)
	if err != nil {
		if e := pkgerrors.As(err); e != nil && e.Code() == pkgerrors.CodeNotFound {
			return nil
		}
		return err
	}

	for _, line := range remote.Products {
		product, err := catClient.GetProduct(ctx, line.ProductID)
		if err != nil {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "product_id", line.ProductID), "skipping unresolvable remote cart line")
			}
			continue
		}
		s.Dispatch(ctx, cart.AddItem{
			Product: cart.Product{
				ID:    product.ID,
				Title: product.Title,
				Price: product.Price,
				Image: product.Image,
			},
			Quantity: line.Quantity,
		})
	}
	return nil
}
