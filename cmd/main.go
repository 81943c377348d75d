package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/kitforge/order-service/docs"
	"github.com/kitforge/order-service/internal/app"
	"github.com/kitforge/order-service/internal/cart"
	"github.com/kitforge/order-service/internal/config"
	"github.com/kitforge/order-service/internal/handler"
	"github.com/kitforge/order-service/internal/notify"
	"github.com/kitforge/order-service/internal/payment"
	"github.com/kitforge/order-service/internal/postgres"
	"github.com/kitforge/order-service/internal/pricing"
	"github.com/kitforge/order-service/internal/repo"
	"github.com/kitforge/order-service/internal/service"
	"github.com/kitforge/order-service/pkg/cache"
	"github.com/kitforge/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Apparel Order Service API
// @version         1.0
// @description     Серверный расчет стоимости заказов и управление их жизненным циклом
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pricingConf, err := pricing.ParseConfig(
		conf.Pricing.TierTable, conf.Pricing.ShippingTable,
		conf.Pricing.SubscriberRate, conf.Pricing.TaxRate,
	)
	panicIfErr("invalid pricing config", err)
	if conf.Pricing.Simplified {
		pricingConf = pricing.Simplified()
	}

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	engine := pricing.NewEngine(pricingConf)
	reconciler := pricing.NewReconciler(conf.Pricing.Tolerance)
	normalizer := cart.NewNormalizer(cart.NewCachedCatalog(orderRepo, productCache))
	verifier := payment.NewVerifier(logger, conf.Payment)
	notifier := notify.NewKafkaNotifier(logger, conf.Kafka)

	orderService := service.NewOrderService(
		logger, txManager, orderRepo, orderRepo,
		engine, reconciler, verifier, orderCache, notifier,
	)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, normalizer, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, productCache)
	app.SetClosers(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
