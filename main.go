package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/rifa-online/rifa-api/cmd/app"
)

// @title           Rifa API
// @description     Reservation and configuration API for a numbered-entry raffle.
//
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @description Shared admin secret
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
