package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"printshop/cmd"
	httpadapter "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	setupLogger(configs.LogLevel)

	gormDB := mustConnectDB(configs)

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetOverdueExecutionsQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		configs.OverdueThreshold,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		TokenTTL:         goDotEnvDuration("TOKEN_TTL", 24*time.Hour),
		OverdueThreshold: goDotEnvDuration("OVERDUE_THRESHOLD", 2*time.Hour),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func setupLogger(logLevel string) {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// mustConnectDB opens the database through lib/pq. The repositories classify
// unique violations via pq error codes, so the pq driver has to back the
// gorm connection.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))

	server := httpadapter.NewServer(
		httpadapter.Handlers{
			StartProcess:    app.CreateStartProcessCommandHandler(),
			CompleteProcess: app.CreateCompleteProcessCommandHandler(),
			CreateOrder:     app.CreateCreateOrderCommandHandler(),
			CompleteOrder:   app.CreateCompleteOrderCommandHandler(),
			DeleteOrder:     app.CreateDeleteOrderCommandHandler(),
			CreateWorker:    app.CreateCreateWorkerCommandHandler(),
			DeleteWorker:    app.CreateDeleteWorkerCommandHandler(),

			GetOrders:            app.CreateGetOrdersQueryHandler(),
			GetOrderDetail:       app.CreateGetOrderDetailQueryHandler(),
			GetProcessExecutions: app.CreateGetProcessExecutionsQueryHandler(),
			GetOrderStats:        app.CreateGetOrderStatsQueryHandler(),
			GetWorkers:           app.CreateGetWorkersQueryHandler(),
			GetWorkerCredentials: app.CreateGetWorkerCredentialsQueryHandler(),
		},
		httpadapter.NewTokenIssuer(configs.JWTSecret, configs.TokenTTL),
		configs.JWTSecret,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
