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

	"github.com/mcqbattle/backend/internal/handlers"
	"github.com/mcqbattle/backend/internal/jwt"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/middlewares"
	"github.com/mcqbattle/backend/internal/repositories"
	"github.com/mcqbattle/backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title mcq-battle API
// @version 1.0.0
// @description Backend for multiplayer multiple-choice quiz battles
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
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		pointsPerCorrect, autoComplete,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
		pointsPerCorrect, autoComplete,
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
// all application, database, Redis, Kafka, logging, JWT, and game
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	pointsPerCorrect int, autoComplete bool,
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
	pgDB = getEnv("POSTGRES_DB", "database")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. Empty broker list disables event publishing.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "game-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Game config
	if pointsPerCorrect, err = strconv.Atoi(getEnv("SCORE_POINTS_PER_CORRECT", "1")); err != nil {
		return
	}
	if autoComplete, err = strconv.ParseBool(getEnv("GAME_AUTO_COMPLETE", "true")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	pointsPerCorrect int, autoComplete bool,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

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
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for game events, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, game events disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	gameReadRepo := repositories.NewGameReadRepository(db)
	gameWriteRepo := repositories.NewGameWriteRepository(db, middlewares.GetTxFromContext)
	playerReadRepo := repositories.NewPlayerReadRepository(db)
	playerWriteRepo := repositories.NewPlayerWriteRepository(db, middlewares.GetTxFromContext)
	questionReadRepo := repositories.NewQuestionReadRepository(db)
	questionWriteRepo := repositories.NewQuestionWriteRepository(db, middlewares.GetTxFromContext)
	requestReadRepo := repositories.NewRequestReadRepository(db)
	requestWriteRepo := repositories.NewRequestWriteRepository(db, middlewares.GetTxFromContext)
	answerReadRepo := repositories.NewAnswerReadRepository(db)
	answerWriteRepo := repositories.NewAnswerWriteRepository(db, middlewares.GetTxFromContext)
	leaderboardRepo := repositories.NewLeaderboardRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	gameService := services.NewGameService(
		gameReadRepo, gameWriteRepo,
		playerReadRepo, playerWriteRepo,
		questionReadRepo, questionWriteRepo,
		requestReadRepo, leaderboardRepo, kafkaWriter,
	)
	joinService := services.NewJoinService(
		gameReadRepo,
		playerReadRepo, playerWriteRepo,
		requestReadRepo, requestWriteRepo,
		leaderboardRepo,
	)
	scoringService := services.NewScoringService(
		gameReadRepo, gameWriteRepo,
		playerReadRepo, playerWriteRepo,
		questionReadRepo,
		answerReadRepo, answerWriteRepo,
		leaderboardRepo, kafkaWriter,
		pointsPerCorrect, autoComplete,
	)
	questionService := services.NewQuestionService(gameReadRepo, questionReadRepo, questionWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createGameHandler := handlers.NewCreateGameHandler(gameService, tokener)
	listGamesHandler := handlers.NewListGamesHandler(gameService, tokener)
	getGameHandler := handlers.NewGetGameHandler(gameService, tokener)
	updateGameHandler := handlers.NewUpdateGameHandler(gameService, tokener)
	startGameHandler := handlers.NewStartGameHandler(gameService, tokener)
	completeGameHandler := handlers.NewCompleteGameHandler(gameService, tokener)
	joinGameHandler := handlers.NewJoinGameHandler(joinService, tokener)
	acceptRequestHandler := handlers.NewAcceptRequestHandler(joinService, tokener)
	rejectRequestHandler := handlers.NewRejectRequestHandler(joinService, tokener)
	cancelRequestHandler := handlers.NewCancelRequestHandler(joinService, tokener)
	leaveGameHandler := handlers.NewLeaveGameHandler(joinService, tokener)
	submitAnswerHandler := handlers.NewSubmitAnswerHandler(scoringService, tokener)
	createQuestionHandler := handlers.NewCreateQuestionHandler(questionService, tokener)
	updateQuestionHandler := handlers.NewUpdateQuestionHandler(questionService, tokener)
	deleteQuestionHandler := handlers.NewDeleteQuestionHandler(questionService, tokener)
	createOptionHandler := handlers.NewCreateOptionHandler(questionService, tokener)
	updateOptionHandler := handlers.NewUpdateOptionHandler(questionService, tokener)
	deleteOptionHandler := handlers.NewDeleteOptionHandler(questionService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/games", listGamesHandler)
			r.Get("/games/{gameId}", getGameHandler)

			// Mutating routes run inside a transaction
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				r.Post("/games/create", createGameHandler)
				r.Put("/games/{gameId}", updateGameHandler)
				r.Post("/games/join", joinGameHandler)
				r.Post("/games/accept", acceptRequestHandler)
				r.Post("/games/reject", rejectRequestHandler)
				r.Post("/games/cancel", cancelRequestHandler)
				r.Post("/games/leave", leaveGameHandler)
				r.Post("/games/start", startGameHandler)
				r.Post("/games/complete", completeGameHandler)

				r.Post("/answers/submit", submitAnswerHandler)

				r.Post("/questions/create", createQuestionHandler)
				r.Put("/questions/{questionId}", updateQuestionHandler)
				r.Delete("/questions/{questionId}", deleteQuestionHandler)

				r.Post("/options/create", createOptionHandler)
				r.Put("/options/{optionId}", updateOptionHandler)
				r.Delete("/options/{optionId}", deleteOptionHandler)
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

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
