package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/niksmo/techmarket/config"
	"github.com/niksmo/techmarket/internal/adapter/catalog"
	"github.com/niksmo/techmarket/internal/adapter/dispatch"
	"github.com/niksmo/techmarket/internal/adapter/storage"
	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/service"
	"github.com/niksmo/techmarket/pkg/notice"
)

type App struct {
	cfg        config.Config
	kv         *storage.KV
	notices    *notice.Center
	stats      *domain.OrderStats
	dispatcher *dispatch.Dispatcher
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initStore()
	app.initCore()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStore() {
	const op = "App.initStore"

	kv, err := storage.OpenKV(app.cfg.StoreDir)
	if err != nil {
		app.fallDown(op, err)
	}
	app.kv = kv
}

func (app *App) initCore() {
	const op = "App.initCore"

	products, icons, err := catalog.Load(app.cfg.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}

	app.notices = notice.New(app.cfg.NoticeHide())
	app.stats = &domain.OrderStats{}

	catalogSvc := service.NewCatalog(
		products, app.cfg.PageSize, app.cfg.Locale,
	)
	cartSvc := service.NewCart(
		products, icons,
		storage.NewCartRepository(app.kv),
		app.notices, app.stats, app.cfg.ExpressSurcharge,
	)
	wishlistSvc := service.NewWishlist(
		products, icons,
		storage.NewWishlistRepository(app.kv),
		app.notices,
	)

	app.dispatcher = dispatch.New(
		catalogSvc, cartSvc, wishlistSvc, icons,
		app.notices, app.cfg.SearchQuiet(),
	)
}

// Start runs the one-shot startup sequence: the readiness log after
// the preloader delay, the welcome banner after the welcome delay.
func (app *App) Start() {
	time.AfterFunc(app.cfg.Preloader(), func() {
		slog.Info("storefront is ready")
	})
	time.AfterFunc(app.cfg.Welcome(), func() {
		app.notices.Success(
			"🎉 Добро пожаловать в TechMarket! Начните покупки прямо сейчас.",
		)
	})
}

func (app *App) Dispatcher() *dispatch.Dispatcher {
	return app.dispatcher
}

func (app *App) Stats() domain.OrderStats {
	return *app.stats
}

func (app *App) Close() {
	app.kv.Close()
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
