package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"deliveryconnect/cmd"
	httpadapter "deliveryconnect/internal/adapters/in/http"
	"deliveryconnect/internal/adapters/out/postgres/courierrepo"
	"deliveryconnect/internal/adapters/out/postgres/deliveryrepo"
	"deliveryconnect/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	root := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	transitScheduler := jobs.NewTransitScheduler(
		root.CreateStartTransitCommandHandler(),
		parseTransitDelay(configs.TransitDelay),
		logger,
	)
	locationRefreshJob := jobs.NewLocationRefreshJob(
		root.CreateRefreshCourierLocationsCommandHandler(),
		configs.LocationRefreshSpec,
		logger,
	)

	jobManager := jobs.NewJobManager(locationRefreshJob, transitScheduler)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreateDeliveryCommandHandler(),
		root.CreateCollectDeliveryCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateRegisterCourierCommandHandler(),
		root.CreateSetCourierOnlineCommandHandler(),
		root.CreateGetDeliveryQueryHandler(),
		root.CreateGetAvailableCouriersQueryHandler(),
		root.CreateGetCommerceDeliveriesQueryHandler(),
		root.CreateGetCourierDeliveriesQueryHandler(),
		transitScheduler,
		root.LocationFeed(),
	)

	startWebServer(server, configs.HTTPPort)
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
		RedisAddr:           goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:       goDotEnvVariable("REDIS_PASSWORD"),
		TransitDelay:        goDotEnvVariable("TRANSIT_DELAY"),
		LocationRefreshSpec: goDotEnvVariable("LOCATION_REFRESH_SPEC"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// parseTransitDelay reads the configured delay; an empty or invalid value
// falls back to the scheduler default.
func parseTransitDelay(raw string) time.Duration {
	if raw == "" {
		return 0
	}

	delay, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnf("Invalid TRANSIT_DELAY %q, using default", raw)
		return 0
	}

	return delay
}

func startWebServer(server *httpadapter.Server, port string) {
	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
