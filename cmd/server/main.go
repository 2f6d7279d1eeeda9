package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"matchproxy/internal/config"
	"matchproxy/internal/handler"
	"matchproxy/internal/matching"
	"matchproxy/internal/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// The service still boots without a key; every match request then
	// reports a configuration error instead.
	var matcher handler.Matcher
	if cfg.GeminiAPIKey == "" {
		log.Println("empty GEMINI_API_KEY in environment, match requests will fail")
	} else {
		client, err := matching.New(context.Background(), matching.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			log.Fatal("error creating gemini client. err: ", err)
		}
		matcher = client
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Register(e, handler.NewMatchHandler(matcher))

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
