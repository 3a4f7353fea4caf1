package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/festivalapp/festival-api/internal/config"
	"github.com/festivalapp/festival-api/internal/database"
	"github.com/festivalapp/festival-api/internal/handler"
	"github.com/festivalapp/festival-api/internal/middleware"
	"github.com/festivalapp/festival-api/internal/repository"
	"github.com/festivalapp/festival-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepo(db)
	setRepo := repository.NewSetRepo(db)
	selectionRepo := repository.NewSelectionRepo(db)

	userHandler := handler.NewUserHandler(userRepo)
	setHandler := handler.NewSetHandler(setRepo)
	selectionHandler := handler.NewSelectionHandler(selectionRepo, userRepo, setRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORS()) // the web client is served from a separate origin

	// Redis is optional: without it the cache and rate limiter are
	// pass-throughs.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAPI(e, userHandler, setHandler, selectionHandler, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, driver=%s)", addr, cfg.Env, cfg.DBDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
