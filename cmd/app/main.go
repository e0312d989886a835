package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"tableside/cmd"
	httpin "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/auth"
	"tableside/internal/adapters/out/menufile"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/ports"
	"tableside/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	sqlDB := openDatabase(configs)
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}),
		&gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to initialize ORM: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	catalog := loadCatalog(menufile.NewLoader(configs.MenuPath))

	app, err := cmd.NewCompositionRoot(configs, gormDB, catalog)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	registry := setupStaffTokens(configs)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, registry, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		MenuPath:            goDotEnvVariable("MENU_PATH"),
		StaffToken:          goDotEnvVariable("STAFF_TOKEN"),
		BonusThreshold:      goDotEnvVariable("BONUS_THRESHOLD"),
		ThirdStageLabel:     goDotEnvVariable("THIRD_STAGE_LABEL"),
		PollIntervalSeconds: goDotEnvVariable("POLL_INTERVAL_SECONDS"),
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

// openDatabase connects with database/sql first so a dead database fails
// fast with a readable error instead of surfacing later inside the ORM.
func openDatabase(configs cmd.Config) *sql.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	return sqlDB
}

// loadCatalog builds the immutable menu catalog from the configured source.
func loadCatalog(source ports.MenuSource) menu.Catalog {
	catalog, err := source.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}
	return catalog
}

// setupStaffTokens registers the configured staff token, or issues one and
// prints it when none is configured so a fresh install is still usable.
func setupStaffTokens(configs cmd.Config) *auth.TokenRegistry {
	registry := auth.NewTokenRegistry()

	if configs.StaffToken == "" {
		token := registry.Issue()
		log.Infof("No STAFF_TOKEN configured, issued one for this run: %s", token)
		return registry
	}

	if err := registry.Register(configs.StaffToken); err != nil {
		log.Fatalf("Invalid STAFF_TOKEN: %v", err)
	}

	return registry
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	interval, err := configs.PollInterval()
	if err != nil {
		log.Fatalf("Invalid poll interval: %v", err)
	}

	detector, err := app.CreateChangeDetector()
	if err != nil {
		log.Fatalf("Failed to create change detector: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateListOrdersQueryHandler(), detector, interval, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, registry *auth.TokenRegistry, port string) {
	pollHandler, err := app.CreatePollOrderQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create poll handler: %v", err)
	}

	server := httpin.NewServer(
		app.Catalog(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateClearCompletedOrdersCommandHandler(),
		app.CreateListCategoriesQueryHandler(),
		app.CreateListCategoryItemsQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		pollHandler,
		app.CreateListOrdersQueryHandler(),
		app.CreateDashboardCountsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	httpin.RegisterRoutes(e, server, registry)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
