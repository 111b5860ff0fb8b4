package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/orders"
	"github.com/cartwheel-labs/storefront-core/internal/store"
	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
	"github.com/cartwheel-labs/storefront-core/pkg/money"
	"github.com/cartwheel-labs/storefront-core/pkg/validate"
)

// Step is a checkout stage. Steps advance one at a time and only
// forward movement is validated; going back is always allowed.
type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// CategoryResolver looks up the category for a product when an order
// line is frozen. Optional; unresolvable categories become empty.
type CategoryResolver interface {
	Category(ctx context.Context, productID int) (string, error)
}

// Options configures a checkout Flow.
type Options struct {
	Rates      money.Rates
	Categories CategoryResolver
	Logger     *logger.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Flow is one shopper's pass through checkout. It owns the form and the
// current step; committed state lives in the store and changes only
// when an order is placed.
type Flow struct {
	st       *store.Store
	validate *validator.Validate
	rates    money.Rates
	resolver CategoryResolver
	logg     *logger.Logger
	now      func() time.Time

	step      Step
	form      Form
	fieldErrs map[string]string
}

// NewFlow starts a checkout pass. The form is prefilled from the
// signed-in user's profile where it maps onto shipping fields.
func NewFlow(st *store.Store, opts Options) (*Flow, error) {
	if st == nil {
		return nil, fmt.Errorf("checkout: store is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	f := &Flow{
		st:       st,
		validate: validate.New(),
		rates:    opts.Rates,
		resolver: opts.Categories,
		logg:     opts.Logger,
		now:      now,
		step:     StepShipping,
	}
	f.prefill()
	return f, nil
}

func (f *Flow) prefill() {
	state := f.st.GetState().Account
	if !state.Authenticated() {
		return
	}
	user := state.User
	f.form.FullName = strings.TrimSpace(user.Name.Full())
	f.form.Phone = user.Phone
	f.form.City = user.Address.City
	f.form.Pincode = user.Address.Zipcode
	if user.Address.Street != "" {
		f.form.Address = strings.TrimSpace(fmt.Sprintf("%d %s", user.Address.Number, user.Address.Street))
	}
}

// Step returns the current stage.
func (f *Flow) Step() Step { return f.step }

// Form returns a copy of the current form.
func (f *Flow) Form() Form { return f.form }

// FieldErrors returns the validation failures from the last Next or
// PlaceOrder call, keyed by json field name. Nil when the last attempt
// passed.
func (f *Flow) FieldErrors() map[string]string { return f.fieldErrs }

// SetForm replaces the form wholesale. Validation errors are kept until
// the next advance attempt so the UI can show them against edits.
func (f *Flow) SetForm(form Form) { f.form = form }

// UpdateForm applies an in-place edit to the form.
func (f *Flow) UpdateForm(edit func(*Form)) {
	if edit != nil {
		edit(&f.form)
	}
}

// Next validates the current step's fields and advances on success.
// Returns false, with FieldErrors populated, when validation blocks the
// move or the flow is already on the last step.
func (f *Flow) Next() bool {
	var fields []string
	switch f.step {
	case StepShipping:
		fields = shippingFields
	case StepPayment:
		fields = paymentFields(f.form.PaymentMethod)
	default:
		return false
	}

	if errs := validateFields(f.validate, f.form, fields); errs != nil {
		f.fieldErrs = errs
		return false
	}
	f.fieldErrs = nil
	f.step++
	return true
}

// Back moves one step toward shipping. Never validates, never loses
// form state.
func (f *Flow) Back() bool {
	if f.step == StepShipping {
		return false
	}
	f.step--
	return true
}

// PlaceOrder re-validates the whole form, freezes the cart into an
// order and clears the cart. On any failure the form and step survive
// untouched so the shopper can correct and retry.
func (f *Flow) PlaceOrder(ctx context.Context) (*orders.Order, error) {
	fields := append(append([]string{}, shippingFields...), paymentFields(f.form.PaymentMethod)...)
	if errs := validateFields(f.validate, f.form, fields); errs != nil {
		f.fieldErrs = errs
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout form has invalid fields").WithDetails(errs)
	}
	f.fieldErrs = nil

	state := f.st.GetState()
	if !state.Account.Authenticated() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}
	if len(state.Cart.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	lines := make([]orders.LineItem, 0, len(state.Cart.Items))
	for _, item := range state.Cart.Items {
		lines = append(lines, orders.LineItem{
			ProductID: item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Image:     item.Image,
			Category:  f.resolveCategory(ctx, item.ID),
			Quantity:  item.Quantity,
		})
	}

	totals := money.Compute(state.Cart.TotalPrice(), f.rates)
	create := orders.NewCreate(orders.CreateInput{
		UserID:          state.Account.User.ID,
		Products:        lines,
		ShippingAddress: f.form.ShippingAddress(),
		Payment:         f.paymentDetails(),
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
	}, f.now())

	f.st.Dispatch(ctx, create)
	f.st.Dispatch(ctx, cart.Clear{})

	if f.logg != nil {
		f.logg.Info(f.logg.WithFields(ctx, map[string]any{
			"order_number": create.Order.OrderNumber,
			"total":        create.Order.Total.StringFixed(2),
		}), "order placed")
	}

	// The pass is complete; a fresh checkout starts clean.
	f.form = Form{}
	f.step = StepShipping

	order := create.Order
	return &order, nil
}

func (f *Flow) resolveCategory(ctx context.Context, productID int) string {
	if f.resolver == nil {
		return ""
	}
	category, err := f.resolver.Category(ctx, productID)
	if err != nil {
		if f.logg != nil {
			f.logg.Warn(f.logg.WithField(ctx, "product_id", productID), "category lookup failed")
		}
		return ""
	}
	return category
}

func (f *Flow) paymentDetails() orders.PaymentDetails {
	details := orders.PaymentDetails{Method: f.form.PaymentMethod}
	if f.form.PaymentMethod.RequiresCardDetails() {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, f.form.CardNumber)
		if len(digits) >= 4 {
			details.CardLastFour = digits[len(digits)-4:]
		}
	}
	return details
}
