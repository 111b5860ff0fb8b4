// Command storefront runs a scripted shopping session against the
// commerce API: browse and filter the catalog, sign in, merge the
// remote cart, walk checkout and place an order. It doubles as a smoke
// test for the whole stack.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/catalog"
	"github.com/cartwheel-labs/storefront-core/internal/checkout"
	"github.com/cartwheel-labs/storefront-core/internal/filters"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	"github.com/cartwheel-labs/storefront-core/internal/store"
	"github.com/cartwheel-labs/storefront-core/pkg/config"
	"github.com/cartwheel-labs/storefront-core/pkg/enums"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
	"github.com/cartwheel-labs/storefront-core/pkg/money"
	"github.com/cartwheel-labs/storefront-core/pkg/redis"
	"github.com/cartwheel-labs/storefront-core/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	gateway, cleanup, err := newGateway(ctx, cfg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap storage gateway", err)
		os.Exit(1)
	}
	defer cleanup()

	catalogClient, err := catalog.NewClient(catalog.Options{
		BaseURL:  cfg.Catalog.BaseURL,
		Timeout:  cfg.Catalog.Timeout,
		CacheTTL: cfg.Catalog.CacheTTL,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to build catalog client", err)
		os.Exit(1)
	}

	identityClient, err := identity.NewClient(identity.Options{
		BaseURL: cfg.Identity.BaseURL,
		Timeout: cfg.Identity.Timeout,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to build identity client", err)
		os.Exit(1)
	}

	initial := store.Hydrate(ctx, gateway, logg)
	st := store.New(store.Options{Initial: &initial, Logger: logg})
	st.Subscribe(store.NewPersistence(gateway, logg))

	if err := run(ctx, st, catalogClient, identityClient, cfg); err != nil {
		logg.Error(ctx, "storefront session failed", err)
		os.Exit(1)
	}
}

func newGateway(ctx context.Context, cfg *config.Config) (storage.Gateway, func(), error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case config.StorageBackendMemory:
		return storage.NewMemory(), func() {}, nil
	case config.StorageBackendSQLite:
		gw, err := storage.NewSQLite(cfg.Storage.SQLitePath, cfg.App.SessionID)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { gw.Close() }, nil
	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client, cfg.App.SessionID), func() { client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func run(ctx context.Context, st *store.Store, catalogClient *catalog.Client, identityClient *identity.Client, cfg *config.Config) error {
	products, err := catalogClient.ListProducts(ctx, 0)
	if err != nil {
		return fmt.Errorf("listing products: %w", err)
	}
	fmt.Printf("catalog has %d products\n", len(products))

	st.Dispatch(ctx, filters.SetCategory{Category: "electronics"})
	st.Dispatch(ctx, filters.SetSortBy{Key: enums.SortKeyPrice})
	visible := filters.Apply(products, st.GetState().Filters)
	fmt.Printf("%d electronics, cheapest first:\n", len(visible))
	for _, p := range visible {
		fmt.Printf("  %-45s %s\n", p.Title, money.FormatPrice(p.Price))
	}

	if len(visible) < 2 {
		return fmt.Errorf("not enough products to shop with")
	}
	for _, p := range visible[:2] {
		st.Dispatch(ctx, cart.AddItem{
			Product:  cart.Product{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image},
			Quantity: 1,
		})
	}
	fmt.Printf("cart: %d items, subtotal %s\n",
		st.GetState().Cart.ItemCount(),
		money.FormatPrice(st.GetState().Cart.TotalPrice()))

	if _, err := store.Login(ctx, st, identityClient, "johnd", "m38rmF$"); err != nil {
		return fmt.Errorf("signing in: %w", err)
	}
	fmt.Printf("signed in as %s\n", st.GetState().Account.User.Username)

	if err := store.ImportRemoteCart(ctx, st, identityClient, catalogClient); err != nil {
		return fmt.Errorf("importing remote cart: %w", err)
	}
	fmt.Printf("cart after remote merge: %d items\n", st.GetState().Cart.ItemCount())

	rates := money.Rates{
		TaxRate:               cfg.Checkout.TaxRateDecimal(),
		FreeShippingThreshold: cfg.Checkout.FreeShippingThresholdDecimal(),
		ShippingFlatFee:       cfg.Checkout.ShippingFlatFeeDecimal(),
	}
	flow, err := checkout.NewFlow(st, checkout.Options{
		Rates:      rates,
		Categories: categoryResolver{client: catalogClient},
	})
	if err != nil {
		return err
	}

	flow.UpdateForm(func(f *checkout.Form) {
		if f.Address == "" {
			f.Address = "1 Demo Street"
		}
		if f.City == "" {
			f.City = "Springfield"
		}
		if f.Pincode == "" {
			f.Pincode = "62704"
		}
		if f.Phone == "" {
			f.Phone = "5551234567"
		}
		if f.FullName == "" {
			f.FullName = "Demo Shopper"
		}
		f.Country = "US"
		f.PaymentMethod = enums.PaymentMethodCOD
	})

	if !flow.Next() {
		return fmt.Errorf("shipping step rejected: %v", flow.FieldErrors())
	}
	if !flow.Next() {
		return fmt.Errorf("payment step rejected: %v", flow.FieldErrors())
	}

	order, err := flow.PlaceOrder(ctx)
	if err != nil {
		return fmt.Errorf("placing order: %w", err)
	}

	fmt.Printf("order %s placed on %s\n", order.OrderNumber, money.FormatDate(order.Date))
	fmt.Printf("  subtotal %s, tax %s, shipping %s, total %s\n",
		money.FormatPrice(order.Subtotal),
		money.FormatPrice(order.Tax),
		money.FormatPrice(order.Shipping),
		money.FormatPrice(order.Total))
	fmt.Printf("  ships to %s\n", order.ShippingAddress.OneLine())
	return nil
}

type categoryResolver struct {
	client *catalog.Client
}

func (r categoryResolver) Category(ctx context.Context, productID int) (string, error) {
	product, err := r.client.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	return product.Category, nil
}
