package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	"github.com/cartwheel-labs/storefront-core/internal/store"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/enums"
	"github.com/cartwheel-labs/storefront-core/pkg/money"
)

func testRates() money.Rates {
	return money.Rates{
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.NewFromInt(100),
		ShippingFlatFee:       decimal.NewFromInt(10),
	}
}

func validForm() Form {
	return Form{
		FullName:      "Jane Doe",
		Address:       "12 Main Street",
		City:          "Springfield",
		Pincode:       "62704",
		Country:       "US",
		Phone:         "5551234567",
		PaymentMethod: enums.PaymentMethodCard,
		CardNumber:    "4111111111111111",
		NameOnCard:    "Jane Doe",
		ExpiryDate:    "12/30",
		CVV:           "123",
	}
}

func signedInStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.Options{})
	ctx := context.Background()
	s.Dispatch(ctx, account.SetCredentials{User: identity.User{ID: 1, Username: "johnd"}, Token: "tok"})
	s.Dispatch(ctx, cart.AddItem{
		Product:  cart.Product{ID: 1, Title: "Widget", Price: decimal.RequireFromString("19.99")},
		Quantity: 2,
	})
	return s
}

func newFlow(t *testing.T, s *store.Store) *Flow {
	t.Helper()
	f, err := NewFlow(s, Options{Rates: testRates()})
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	return f
}

func TestEmptyShippingBlocksFirstStep(t *testing.T) {
	s := store.New(store.Options{})
	f := newFlow(t, s)

	if f.Next() {
		t.Fatal("empty form must not advance")
	}
	if f.Step() != StepShipping {
		t.Fatalf("expected to stay on shipping, got %s", f.Step())
	}
	errs := f.FieldErrors()
	if errs["address"] == "" {
		t.Fatalf("expected address error, got %v", errs)
	}
	if errs["fullName"] == "" || errs["phone"] == "" {
		t.Fatalf("expected errors for every missing shipping field, got %v", errs)
	}
}

func TestValidShippingAdvances(t *testing.T) {
	f := newFlow(t, signedInStore(t))
	f.SetForm(validForm())

	if !f.Next() {
		t.Fatalf("expected advance, errors: %v", f.FieldErrors())
	}
	if f.Step() != StepPayment {
		t.Fatalf("expected payment step, got %s", f.Step())
	}
	if f.FieldErrors() != nil {
		t.Fatalf("expected no errors, got %v", f.FieldErrors())
	}
}

func TestPaymentStepValidatesCardFields(t *testing.T) {
	f := newFlow(t, signedInStore(t))
	form := validForm()
	form.CardNumber = "4111111111111112" // fails the checksum
	f.SetForm(form)

	f.Next()
	if f.Next() {
		t.Fatal("bad card number must not advance")
	}
	if got := f.FieldErrors()["cardNumber"]; got == "" {
		t.Fatalf("expected card number error, got %v", f.FieldErrors())
	}
}

func TestNonCardMethodSkipsCardFields(t *testing.T) {
	f := newFlow(t, signedInStore(t))
	form := validForm()
	form.PaymentMethod = enums.PaymentMethodCOD
	form.CardNumber = ""
	form.NameOnCard = ""
	form.ExpiryDate = ""
	form.CVV = ""
	f.SetForm(form)

	f.Next()
	if !f.Next() {
		t.Fatalf("cod must not require card fields, errors: %v", f.FieldErrors())
	}
	if f.Step() != StepReview {
		t.Fatalf("expected review step, got %s", f.Step())
	}
}

func TestBackNeverValidates(t *testing.T) {
	f := newFlow(t, signedInStore(t))
	f.SetForm(validForm())
	f.Next()

	// Wreck the form, then go back: allowed, state kept.
	f.UpdateForm(func(form *Form) { form.Address = "" })
	if !f.Back() {
		t.Fatal("back from payment must succeed")
	}
	if f.Step() != StepShipping {
		t.Fatalf("expected shipping step, got %s", f.Step())
	}
	if f.Form().FullName != "Jane Doe" {
		t.Fatal("back must not lose form state")
	}

	if f.Back() {
		t.Fatal("back from shipping must be refused")
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	s := signedInStore(t)
	f := newFlow(t, s)
	f.SetForm(validForm())
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	order, err := f.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	state := s.GetState()
	if len(state.Orders.Orders) != 1 {
		t.Fatalf("expected one order, got %d", len(state.Orders.Orders))
	}
	if state.Cart.ItemCount() != 0 {
		t.Fatal("expected cart cleared after order")
	}
	if order.Status != enums.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %s", order.Status)
	}
	if order.Payment.CardLastFour != "1111" {
		t.Fatalf("expected last four 1111, got %q", order.Payment.CardLastFour)
	}
	// 39.98 subtotal + 3.20 tax + 10 shipping.
	if !order.Total.Equal(decimal.RequireFromString("53.18")) {
		t.Fatalf("unexpected total %s", order.Total)
	}
	if order.ShippingAddress.City != "Springfield" {
		t.Fatalf("unexpected shipping address %+v", order.ShippingAddress)
	}
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	s := store.New(store.Options{})
	s.Dispatch(context.Background(), cart.AddItem{
		Product:  cart.Product{ID: 1, Title: "Widget", Price: decimal.NewFromInt(5)},
		Quantity: 1,
	})
	f := newFlow(t, s)
	f.SetForm(validForm())

	_, err := f.PlaceOrder(context.Background())
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(s.GetState().Orders.Orders) != 0 {
		t.Fatal("failed placement must not create an order")
	}
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	s := store.New(store.Options{})
	s.Dispatch(context.Background(), account.SetCredentials{User: identity.User{ID: 1}, Token: "tok"})
	f := newFlow(t, s)
	f.SetForm(validForm())

	_, err := f.PlaceOrder(context.Background())
	if e := pkgerrors.As(err); e == nil || e.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderValidationKeepsForm(t *testing.T) {
	s := signedInStore(t)
	f := newFlow(t, s)
	form := validForm()
	form.Phone = "nope"
	f.SetForm(form)

	_, err := f.PlaceOrder(context.Background())
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if f.Form().FullName != "Jane Doe" {
		t.Fatal("failed placement must keep the form")
	}
	if f.FieldErrors()["phone"] == "" {
		t.Fatalf("expected phone error, got %v", f.FieldErrors())
	}
	if s.GetState().Cart.ItemCount() == 0 {
		t.Fatal("failed placement must keep the cart")
	}
}

func TestPrefillFromProfile(t *testing.T) {
	s := store.New(store.Options{})
	s.Dispatch(context.Background(), account.SetCredentials{
		User: identity.User{
			ID:       1,
			Username: "johnd",
			Name:     identity.Name{Firstname: "John", Lastname: "Doe"},
			Phone:    "5550001111",
			Address:  identity.Address{City: "Kilcoole", Street: "new road", Number: 7682, Zipcode: "12926"},
		},
		Token: "tok",
	})

	f := newFlow(t, s)
	form := f.Form()
	if form.FullName != "John Doe" {
		t.Fatalf("unexpected prefilled name %q", form.FullName)
	}
	if form.City != "Kilcoole" || form.Pincode != "12926" {
		t.Fatalf("unexpected prefilled address %+v", form)
	}
	if form.Address != "7682 new road" {
		t.Fatalf("unexpected street %q", form.Address)
	}
}

type stubResolver struct{ categories map[int]string }

func (r stubResolver) Category(_ context.Context, id int) (string, error) {
	return r.categories[id], nil
}

func TestPlaceOrderResolvesCategories(t *testing.T) {
	s := signedInStore(t)
	f, err := NewFlow(s, Options{
		Rates:      testRates(),
		Categories: stubResolver{categories: map[int]string{1: "electronics"}},
	})
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	f.SetForm(validForm())

	order, err := f.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Products[0].Category != "electronics" {
		t.Fatalf("unexpected category %q", order.Products[0].Category)
	}
}
