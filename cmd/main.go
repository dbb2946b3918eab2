package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	brandapp "github.com/halobenaya/storefront/application/brand"
	categoryapp "github.com/halobenaya/storefront/application/category"
	locationapp "github.com/halobenaya/storefront/application/location"
	orderapp "github.com/halobenaya/storefront/application/order"
	productapp "github.com/halobenaya/storefront/application/product"
	userapp "github.com/halobenaya/storefront/application/user"
	"github.com/halobenaya/storefront/cmd/config"
	redisclient "github.com/halobenaya/storefront/cmd/redis"
	_ "github.com/halobenaya/storefront/docs"
	brandRepo "github.com/halobenaya/storefront/repository/brand"
	categoryRepo "github.com/halobenaya/storefront/repository/category"
	locationRepo "github.com/halobenaya/storefront/repository/location"
	orderRepo "github.com/halobenaya/storefront/repository/order"
	productRepo "github.com/halobenaya/storefront/repository/product"
	redisRepo "github.com/halobenaya/storefront/repository/redis"
	txRepo "github.com/halobenaya/storefront/repository/tx"
	userRepo "github.com/halobenaya/storefront/repository/user"
	"github.com/halobenaya/storefront/thirdparty/rabbitmq"
	"github.com/halobenaya/storefront/transport"
	"github.com/halobenaya/storefront/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront e-commerce API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize RabbitMQ publisher for order expiration
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	BrandRepo := brandRepo.NewBrandRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	BrandApp := brandapp.NewBrandApp(BrandRepo, ProductRepo)
	CategoryApp := categoryapp.NewCategoryApp(CategoryRepo, ProductRepo)
	LocationApp := locationapp.NewLocationApp(LocationRepo, ProductRepo)
	ProductApp := productapp.NewProductApp(ProductRepo, BrandRepo, CategoryRepo, LocationRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ProductRepo, UserRepo, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, BrandApp, CategoryApp, LocationApp, ProductApp, OrderApp)

	// Start the order expiration consumer
	if cfg.Order.ConsumerEnabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		if err := consumer.Start(context.Background()); err != nil {
			logger.Fatal("err start consumer", zap.Error(err))
		}
		logger.Info("Order expiration consumer running")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
