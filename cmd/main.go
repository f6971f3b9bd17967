package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/lootplay/prize-engine/internal/draw"
	"github.com/lootplay/prize-engine/internal/handlers"
	appjwt "github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/jobs"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/middlewares"
	"github.com/lootplay/prize-engine/internal/repositories"
	"github.com/lootplay/prize-engine/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title prize-engine API
// @version 1.0.0
// @description Prize draw and payout control engine for chest and scratch-card products
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		poolCacheTTL,
		kafkaBrokers, kafkaTopic, kafkaGroup,
		logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		poolCacheTTL,
		kafkaBrokers, kafkaTopic, kafkaGroup,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	poolCacheTTLSecond int,
	kafkaBrokers []string, kafkaTopic, kafkaGroup string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "prize_engine")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if poolCacheTTLSecond, err = strconv.Atoi(getEnv("POOL_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config; empty brokers disable the activity stream.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC_ACTIVITY", "player-activity")
	kafkaGroup = getEnv("KAFKA_GROUP_ACHIEVEMENTS", "achievement-trigger")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It wires repositories, services, and handlers, starts the budget refill
// scheduler and the achievement consumer, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	poolCacheTTLSecond int,
	kafkaBrokers []string, kafkaTopic, kafkaGroup string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer and reader for the activity stream. Optional: without
	// brokers the engine runs with events and achievements disabled.
	var kafkaWriter *kafka.Writer
	var kafkaReader *kafka.Reader
	if len(kafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.Hash{},
		}
		defer kafkaWriter.Close()

		kafkaReader = kafka.NewReader(kafka.ReaderConfig{
			Brokers: kafkaBrokers,
			Topic:   kafkaTopic,
			GroupID: kafkaGroup,
		})
		defer kafkaReader.Close()
	} else {
		logger.Log.Warnw("kafka brokers not configured, activity stream disabled")
	}

	// Initialize JWT service
	tokener := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	realWalletRepo := repositories.NewWalletRepository(db, repositories.WalletTableReal)
	demoWalletRepo := repositories.NewWalletRepository(db, repositories.WalletTableDemo)
	transactionRepo := repositories.NewTransactionRepository(db)
	playRepo := repositories.NewPlayRepository(db)
	probabilityRepo := repositories.NewProbabilityRepository(db)
	poolCacheRepo := repositories.NewPoolCacheRepository(rdb, time.Duration(poolCacheTTLSecond)*time.Second)
	rtpRepo := repositories.NewRTPRepository(db)
	financeRepo := repositories.NewFinanceRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)
	txRunner := repositories.NewTxRunner(db)

	// Initialize services
	var writer services.KafkaWriter
	if kafkaWriter != nil {
		writer = kafkaWriter
	}
	publisher := services.NewActivityPublisher(writer)
	rng := draw.NewSource()

	walletService := services.NewWalletService(realWalletRepo, demoWalletRepo, transactionRepo, txRunner, publisher)
	rtpService := services.NewRTPService(rtpRepo, playRepo)
	playService := services.NewPlayService(
		playRepo,
		realWalletRepo, demoWalletRepo,
		transactionRepo,
		probabilityRepo,
		poolCacheRepo,
		rtpService,
		financeRepo,
		txRunner,
		publisher,
		rng,
	)
	financeService := services.NewFinanceService(financeRepo, rtpRepo)

	var reader services.KafkaReader
	if kafkaReader != nil {
		reader = kafkaReader
	}
	achievementService := services.NewAchievementService(achievementRepo, reader)

	// Initialize handlers
	playHandler := handlers.NewPlayHandler(playService, tokener)
	balanceHandler := handlers.NewBalanceHandler(walletService, tokener)
	depositHandler := handlers.NewDepositHandler(walletService, tokener)
	withdrawHandler := handlers.NewWithdrawHandler(walletService, tokener)
	dailyReportHandler := handlers.NewDailyReportHandler(financeService, tokener)
	profitGoalHandler := handlers.NewSetProfitGoalHandler(financeService, tokener)
	getRTPHandler := handlers.NewGetRTPSettingsHandler(rtpService, tokener)
	updateRTPHandler := handlers.NewUpdateRTPSettingsHandler(rtpService, tokener)
	applyPresetHandler := handlers.NewApplyRTPPresetHandler(rtpService, tokener)
	listPoolHandler := handlers.NewListPoolHandler(probabilityRepo, tokener)
	achievementsHandler := handlers.NewListAchievementsHandler(achievementService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokener)
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/play", playHandler)
			r.Get("/balance", balanceHandler)
			r.Post("/wallet/deposit", depositHandler)
			r.Post("/wallet/withdraw", withdrawHandler)
			r.Get("/finance/daily", dailyReportHandler)
			r.Get("/achievements", achievementsHandler)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/rtp/{product}", getRTPHandler)
				r.Put("/rtp/{product}", updateRTPHandler)
				r.Post("/rtp/{product}/preset", applyPresetHandler)
				r.Put("/finance/{product}/goal", profitGoalHandler)
				r.Get("/probability/{product}", listPoolHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Daily budget refill
	scheduler := jobs.NewScheduler(rtpRepo)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	// Achievement trigger consumes the activity stream until shutdown.
	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	go func() {
		if err := achievementService.Run(consumerCtx); err != nil && err != context.Canceled {
			logger.Log.Errorw("achievement consumer stopped", "error", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	cancelConsumer()
	<-scheduler.Stop().Done()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
