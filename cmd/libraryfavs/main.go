package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/parcon/apple-music-library-scripts/internal/api"
	"github.com/parcon/apple-music-library-scripts/internal/pipeline"
	"github.com/parcon/apple-music-library-scripts/internal/store"
	"github.com/parcon/apple-music-library-scripts/pkg/router"
)

var (
	libraryPath string
	addr        string
	dbPath      string
	exportDir   string
)

func init() {
	flag.StringVar(&libraryPath, "library", getEnvOrDefault("LIBRARYFAVS_LIBRARY", "Library.xml"), "Path to the music library XML export")
	flag.StringVar(&addr, "addr", getEnvOrDefault("LIBRARYFAVS_ADDR", "127.0.0.1:8080"), "Loopback address to serve the dashboard on")
	flag.StringVar(&dbPath, "db", getEnvOrDefault("LIBRARYFAVS_DB", "libraryfavs.db"), "Path to the run-history SQLite database")
	flag.StringVar(&exportDir, "export", os.Getenv("LIBRARYFAVS_EXPORT"), "Directory for aggregate exports (empty disables export)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	flag.Parse()

	// Init run-history DB
	if err := store.InitDB(dbPath); err != nil {
		log.Fatalf("❌ Failed to open run-history database: %v", err)
	}
	defer store.Close()

	// Parse and aggregate once; both error classes are fatal
	runID := uuid.New().String()
	snap, err := pipeline.Run(context.Background(), runID, pipeline.Spec{
		LibraryPath: libraryPath,
		ExportDir:   exportDir,
		Year:        time.Now().Year(),
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Serve the dashboard until the process is terminated
	r := router.New()
	api.RegisterRoutes(r, snap)
	r.Start(addr)
}
