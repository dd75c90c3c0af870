package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"flightbooking/cfg"
	"flightbooking/internal/account"
	"flightbooking/internal/auth"
	"flightbooking/internal/booking"
	"flightbooking/internal/catalog"
	"flightbooking/internal/model"
	"flightbooking/internal/search"
	"flightbooking/internal/seed"
	"flightbooking/internal/store"
	"flightbooking/pkg/cache"
	"flightbooking/pkg/db"
	"flightbooking/pkg/idgen"
	"flightbooking/pkg/logger"

	_ "flightbooking/cmd/server/docs" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Flight Booking API
// @version         1.0
// @description     Backend service for flight search, booking, and account management.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// database
	// ============
	pg := config.Postgres
	pgDSN := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		pg.User, pg.Password, pg.Host, pg.Port, pg.DBName, pg.SSLMode,
	)

	m, err := migrate.New("file://db/migrations", pgDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	client, err := db.NewSQLClient("postgres", pgDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	// ============
	// cache
	// ============
	redisAddr := config.Redis.Host + ":" + config.Redis.Port
	redis := cache.NewRedisCache(redisAddr, config.Redis.Password)

	// ============
	// id generation
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// store
	// ============
	records := store.NewPostgres(client)

	// ============
	// internal services
	// ============
	searchSvc := search.NewService(records, redis, config.CacheTTLMinutes, zlogger)
	searchHandler := search.NewHandler(searchSvc)

	flightSvc := catalog.NewFlightService(records, ids, searchSvc, zlogger)
	priceSvc := catalog.NewPriceService(records, ids, zlogger)
	airportSvc := catalog.NewAirportService(records, ids)
	airlineSvc := catalog.NewAirlineService(records, ids)
	catalogHandler := catalog.NewHandler(flightSvc, priceSvc, airportSvc, airlineSvc)

	bookingSvc := booking.NewService(records, ids, zlogger)
	bookingHandler := booking.NewHandler(bookingSvc)

	accountSvc := account.NewService(records, ids)
	accountHandler := account.NewHandler(accountSvc)

	tokenTTL := time.Duration(config.Auth.TokenTTLMinutes) * time.Minute
	authSvc := auth.NewService(records, accountSvc, config.Auth.JWTSecret, tokenTTL, zlogger)
	authHandler := auth.NewHandler(authSvc)

	// ============
	// seed
	// ============
	if config.SeedOnBoot {
		initializer := seed.NewInitializer(records, ids, zlogger)
		if err := initializer.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}

	// ============
	// HTTP
	// ============
	r := gin.Default()
	r.Use(cors.Default())

	authed := auth.Middleware(authSvc)
	admin := auth.RequireRole(authSvc, model.RoleAdmin)

	authHandler.RegisterRoutes(r)
	searchHandler.RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r, admin)
	bookingHandler.RegisterRoutes(r, authed)
	accountHandler.RegisterRoutes(r, authed, admin)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
