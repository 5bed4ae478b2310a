package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/guessdle/guessdle/api/middleware"
	v1 "github.com/guessdle/guessdle/api/v1"
	"github.com/guessdle/guessdle/internal/config"
	"github.com/guessdle/guessdle/internal/game"
	"github.com/guessdle/guessdle/internal/play"
	"github.com/guessdle/guessdle/internal/stats"
	"github.com/guessdle/guessdle/internal/user"
	"github.com/guessdle/guessdle/pkg/db"
	"github.com/guessdle/guessdle/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	user.SetSigningSecret(cfg.JWTSecret)

	db.Init(cfg)
	db.DB.AutoMigrate(&user.User{}, &game.Game{}, &game.Answer{}, &stats.DailyStats{}, &stats.UserStats{})

	userRepo := user.NewGormUserRepository(db.DB)
	gameRepo := game.NewGormGameRepository(db.DB)
	statsRepo := stats.NewGormStatsRepository(db.DB)

	feed := websocket.NewFeed(db.Rdb)
	if err := feed.SubscribeCompletions(); err != nil {
		log.Fatalf("error subscribing to completion feed: %v", err)
	}

	statsService := stats.NewStatsService(statsRepo)
	v1.UserService = user.NewUserService(userRepo)
	v1.GameService = game.NewGameService(gameRepo)
	v1.StatsService = statsService
	v1.PlayService = play.NewPlayService(
		gameRepo,
		play.NewRedisSessionStore(db.Rdb),
		play.NewMemorySessionStore(),
		statsService,
		feed,
	)

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	jwtMiddleware := api_middleware.SetupJWTMiddleware()

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"), jwtMiddleware)
	v1.RegisterGameRoutes(api.Group("/games"), jwtMiddleware)

	p := api.Group("/play")
	p.Use(api_middleware.OptionalIdentity())
	v1.RegisterPlayRoutes(p)

	e.GET("/live", websocket.LiveFeedHandler)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
