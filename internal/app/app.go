package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/chetan1913051012-sudo/effective-system/config"
	"github.com/chetan1913051012-sudo/effective-system/internal/adapter/imaging"
	"github.com/chetan1913051012-sudo/effective-system/internal/adapter/mailer"
	"github.com/chetan1913051012-sudo/effective-system/internal/adapter/storage"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/service"
)

// App is the device-resident session: the four hydrated stores, their
// services and the transient cart, wired for the presentation layer.
type App struct {
	ctx   context.Context
	cfg   config.Config
	store *storage.DocumentStore

	Cart     *domain.Cart
	Catalog  *service.CatalogService
	Profiles *service.ProfileService
	Settings *service.SettingsService
	Receipts *service.ReceiptService
	Orders   *service.OrderService
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initServices()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	store, err := storage.Open(app.cfg.StoragePath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.store = store
}

// initServices hydrates every store from its durable slot and only
// then unlocks saving, so an empty first-run session can never
// overwrite previously durable data.
func (app *App) initServices() {
	adminCfg := domain.DefaultAdminConfig()
	app.store.Load(port.DocAdminConfig, &adminCfg)

	var products []domain.Product
	if !app.store.Load(port.DocCatalog, &products) || len(products) == 0 {
		products = domain.DefaultProducts()
	}

	var profiles []domain.Profile
	app.store.Load(port.DocProfiles, &profiles)

	var orders []domain.Order
	app.store.Load(port.DocOrders, &orders)

	app.store.FinishHydration()

	app.Cart = domain.NewCart()
	app.Settings = service.NewSettingsService(adminCfg, app.store)
	app.Catalog = service.NewCatalogService(
		domain.NewCatalog(products), app.store, imaging.NewFileEncoder(),
	)
	app.Profiles = service.NewProfileService(
		domain.NewProfileBook(profiles), app.store,
	)
	app.Receipts = service.NewReceiptService(
		app.Settings, mailer.NewDraftWriter(app.cfg.DraftsDir), app.cfg.Currency,
	)
	app.Orders = service.NewOrderService(
		domain.NewOrderHistory(orders), app.Cart,
		app.Catalog, app.Profiles, app.Receipts, app.store,
	)
}

func (app *App) Run() {
	slog.Info("session is ready",
		"products", len(app.Catalog.Products()),
		"profiles", len(app.Profiles.Profiles()),
		"orders", len(app.Orders.Orders()),
	)
}

func (app *App) Close() {
	slog.Info("session is closing...")
	app.store.Close()
	slog.Info("session is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
