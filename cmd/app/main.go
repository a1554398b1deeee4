package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateRunAssignmentsCommandHandler(),
		configs.AssignmentCronSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		GeoServiceURL:          os.Getenv("GEO_SERVICE_URL"),
		GeoServiceAPIKey:       os.Getenv("GEO_SERVICE_API_KEY"),
		GeoCity:                os.Getenv("GEO_CITY"),
		GeoCountry:             os.Getenv("GEO_COUNTRY"),
		AssignmentCronSchedule: os.Getenv("ASSIGNMENT_CRON_SCHEDULE"),
	}
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.AreaDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateRunAssignmentsCommandHandler(),
		app.CreateCreatePartnerCommandHandler(),
		app.CreateUpdatePartnerCommandHandler(),
		app.CreateRemovePartnerCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllPartnersQueryHandler(),
		app.CreateGetAssignmentMetricsQueryHandler(),
		app.CreateGetDashboardQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("Web server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down web server: %v", err)
	}
}
