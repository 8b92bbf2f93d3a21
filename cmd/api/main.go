package main

import (
	"os"

	"hawaiielite-properties/pkg/logger"
)

// @title Hawaii Elite Properties API
// @version 1.0
// @description Property search aggregation over Zillow and Redfin, WordPress content and user listings.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	app.InitializeServer()
	err := app.StartServer()
	app.cleanup()
	if err != nil {
		logger.GlobalLogger.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}
