// cardsrv runs the card preview server.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/network-cards/network-cards/internal/config"
	"github.com/network-cards/network-cards/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Startup] No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Startup] Invalid configuration: %v", err)
	}

	app := ui.NewApp()
	if err := app.Start(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("[Startup] Server failed: %v", err)
	}
}
