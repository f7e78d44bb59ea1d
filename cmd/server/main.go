package main

import (
	"log/slog"
	"os"
	"time"

	controller "commerce-api/internal/controllers/http"
	mmysql "commerce-api/internal/infra/mysql"
	"commerce-api/internal/infra/pg"
	"commerce-api/internal/infra/rabbitmq"
	"commerce-api/internal/logging"
	mysqlrepo "commerce-api/internal/repository/mysql"
	"commerce-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	logging.Init()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		slog.Error("db: connect", "error", err)
		os.Exit(1)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := mmysql.SeedProducts(db); err != nil {
		slog.Error("db: seed products", "error", err)
		os.Exit(1)
	}

	repos := mysqlrepo.NewRepositories(db)
	txm := mysqlrepo.NewTxManager(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		slog.Error("failed to init publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	var pgClient pg.ClientInterface
	if baseURL := os.Getenv("PG_BASE_URL"); baseURL != "" {
		pgClient = pg.NewHTTPClient(baseURL, 5*time.Second)
	} else {
		slog.Warn("PG_BASE_URL not set, using mock payment gateway")
		pgClient = pg.NewMockClient()
	}

	productService := services.NewProductService(repos.Products)
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         redisHost + ":6379",
			DB:           0,
			PoolSize:     200,
			MinIdleConns: 20,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		productService.SetRedisClient(redisClient)
	}

	orderService := services.NewOrderService(txm, repos.Orders, repos.Histories, productService, publisher)
	paymentService := services.NewPaymentService(txm, repos.Payments, orderService, pgClient, publisher)

	handler := controller.NewHandler(orderService, paymentService, productService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("starting commerce api", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server run", "error", err)
		os.Exit(1)
	}
}
