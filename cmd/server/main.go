/*
main.go - Application entry point

PURPOSE:

	Initializes and starts the SPAC filing deadline tracker server.
	Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
 1. Parse command-line flags
 2. Initialize SQLite store
 3. Create API handler with dependencies
 4. Start the background alert sweep
 5. Start server with graceful shutdown

COMMAND-LINE FLAGS:

	-port    HTTP server port (default: 8080)
	-db      SQLite database path (default: filings.db)
	         Use ":memory:" for an in-memory database
	-sweep   Enable the background alert sweep (default: true)

GRACEFUL SHUTDOWN:

	On SIGINT/SIGTERM:
	1. Stop accepting new connections
	2. Wait for active requests to complete (30s timeout)
	3. Stop the alert sweep and close the database
	4. Exit

EXAMPLES:

	# Run with file database
	./server -db="./data/filings.db"

	# Run with in-memory database, no sweep
	./server -db=":memory:" -sweep=false
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacdesk/filing-engine/api"
	"github.com/spacdesk/filing-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "filings.db", "SQLite database path")
	sweepEnabled := flag.Bool("sweep", true, "Enable the background alert sweep")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize handler and router
	handler := api.NewHandler(store)
	router := api.NewRouter(handler)

	// Background alert sweep
	sweep := api.NewAlertSweep(store)
	sweep.Enabled = *sweepEnabled
	sweep.Start()
	defer sweep.Stop()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
