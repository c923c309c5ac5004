package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hostel-room-booking/internal/config"
	"github.com/iliyamo/hostel-room-booking/internal/database"
	"github.com/iliyamo/hostel-room-booking/internal/handler"
	"github.com/iliyamo/hostel-room-booking/internal/middleware"
	"github.com/iliyamo/hostel-room-booking/internal/queue"
	"github.com/iliyamo/hostel-room-booking/internal/repository"
	"github.com/iliyamo/hostel-room-booking/internal/router"
	queue_publisher "github.com/iliyamo/hostel-room-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and rate limiter into
	// pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb))

	users := repository.NewUserRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)

	router.Register(e, router.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      handler.NewAuthHandler(cfg, users),
		Rooms:     handler.NewRoomHandler(rooms),
		Bookings:  handler.NewBookingHandler(bookings, queue_publisher.New()),
		Reviews:   handler.NewReviewHandler(reviews),
		Cache:     middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
	})

	// Background consumer draining booking.created into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
