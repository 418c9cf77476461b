package main

import (
	"log"

	"clientapi/internal/app"
)

// @title        Client API
// @version      1.0
// @description  Client registry: lookup, paging, income filter and CRUD.
// @BasePath     /
func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
