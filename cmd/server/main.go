// Package main implements the entry point for the shoplist API server,
// which manages per-user shopping lists and their items behind a
// token-authenticated REST interface.
package main

import (
	"context"
	"log"
)

// main is the entry point for the shoplist-api server.
// It initializes configuration, logging, the database connection and the
// service graph, runs pending migrations, and starts the HTTP server.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.runMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
