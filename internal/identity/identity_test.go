package identity

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestLoginSuccess(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("username") != "johnd" || r.URL.Query().Get("password") != "m38rmF$" {
			t.Fatalf("credentials not forwarded: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]User{{ID: 1, Username: "johnd", Email: "john@example.com"}})
	})

	user, token, err := client.Login(context.Background(), "johnd", "m38rmF$")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 1 || user.Username != "johnd" {
		t.Fatalf("unexpected user %+v", user)
	}

	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not base64: %v", err)
	}
	if string(decoded) != "johnd:m38rmF$" {
		t.Fatalf("unexpected token payload %q", decoded)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]User{})
	})

	_, _, err := client.Login(context.Background(), "johnd", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server must not be reached")
	})
	_, _, err := client.Login(context.Background(), "", "")
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in User
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode: %v", err)
		}
		in.ID = 11
		json.NewEncoder(w).Encode(in)
	})

	created, err := client.CreateUser(context.Background(), User{Username: "new", Password: "pw", Email: "n@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 11 || created.Username != "new" {
		t.Fatalf("unexpected created user %+v", created)
	}
}

func TestUpdateUser(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/users/4" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in User
		json.NewDecoder(r.Body).Decode(&in)
		in.ID = 4
		json.NewEncoder(w).Encode(in)
	})

	updated, err := client.UpdateUser(context.Background(), 4, User{Username: "johnd", Phone: "5550001111"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != 4 || updated.Phone != "5550001111" {
		t.Fatalf("unexpected updated user %+v", updated)
	}
}

func TestUserCart(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") != "2" {
			t.Fatalf("userId not forwarded: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]RemoteCart{{ID: 9, UserID: 2, Products: []RemoteCartProduct{{ProductID: 3, Quantity: 2}}}})
	})

	cart, err := client.UserCart(context.Background(), 2)
	if err != nil {
		t.Fatalf("user cart: %v", err)
	}
	if cart.ID != 9 || len(cart.Products) != 1 || cart.Products[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", cart)
	}
}

func TestUserCartMissing(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]RemoteCart{})
	})
	_, err := client.UserCart(context.Background(), 7)
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServerErrorMapsToDependency(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, _, err := client.Login(context.Background(), "a", "b")
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
