// Package identity talks to the user endpoints of the commerce API:
// credential checks, account creation, profile updates and the remote
// cart lookup that follows a sign-in.
package identity

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
)

// Name splits a user's display name the way the API stores it.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Full joins the name parts for display.
func (n Name) Full() string {
	switch {
	case n.Firstname == "":
		return n.Lastname
	case n.Lastname == "":
		return n.Firstname
	default:
		return n.Firstname + " " + n.Lastname
	}
}

type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Address is the profile address as the API models it, distinct from a
// checkout shipping address.
type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// User is a registered account. Password round-trips through the API in
// the clear; this is a development backend contract, not a production one.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Name     Name    `json:"name"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
}

// RemoteCartProduct is one line of a server-side cart.
type RemoteCartProduct struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// RemoteCart is a cart stored against a user on the server.
type RemoteCart struct {
	ID       int                 `json:"id"`
	UserID   int                 `json:"userId"`
	Date     string              `json:"date"`
	Products []RemoteCartProduct `json:"products"`
}

// Token encodes credentials the way the session layer expects them.
// It is an opaque client-side marker, not a server-verified token.
func Token(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// Options configures the identity client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger

	// HTTPClient overrides the default client, for tests.
	HTTPClient *http.Client
}

// Client is the identity API client.
type Client struct {
	http    *http.Client
	baseURL string
	logg    *logger.Logger
}

// NewClient builds an identity client. BaseURL is required.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("identity: base URL is required")
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{http: hc, baseURL: opts.BaseURL, logg: opts.Logger}, nil
}

// Login checks the credentials against the user directory. The API
// returns the matching users as an array; an empty array means the
// credentials are wrong. On success the derived session token is
// returned alongside the user.
func (c *Client) Login(ctx context.Context, username, password string) (*User, string, error) {
	if username == "" || password == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)

	var matches []User
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &matches); err != nil {
		return nil, "", err
	}
	if len(matches) == 0 {
		return nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
	}

	user := matches[0]
	if c.logg != nil {
		c.logg.Info(c.logg.WithUserID(ctx, fmt.Sprint(user.ID)), "user signed in")
	}
	return &user, Token(username, password), nil
}

// CreateUser registers a new account and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, input User) (*User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}
	var created User
	if err := c.do(ctx, http.MethodPost, "/users", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces the profile for the given user id.
func (c *Client) UpdateUser(ctx context.Context, id int, input User) (*User, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id must be positive")
	}
	var updated User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UserCart fetches the server-side cart for a user. Users without a
// stored cart get a CodeNotFound error.
func (c *Client) UserCart(ctx context.Context, userID int) (*RemoteCart, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id must be positive")
	}
	var carts []RemoteCart
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/carts?userId=%d", userID), nil, &carts); err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no cart stored for user")
	}
	return &carts[0], nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "identity request failed")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "resource not found")
	case res.StatusCode >= 400:
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("identity API returned %d", res.StatusCode))
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode identity response")
	}
	return nil
}
