package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"microblog/app/config"
	"microblog/app/repositories"
	"microblog/app/routes"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("microblog version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: microblog <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the blog API server.

Configuration is read from the environment: PORT, DB_DRIVER (sqlite3 or
postgres), DB_DSN, JWT_SECRET, TOKEN_TTL_MINUTES, CORS_ORIGINS.
`
	fmt.Println(helpText)
}

// serve opens the database, mounts the routes and runs the HTTP server
// until interrupted.
func serve() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "microblog: ", log.LstdFlags)

	db, err := repositories.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := repositories.EnsureSchema(db, cfg.DBDriver); err != nil {
		logger.Fatalf("Failed to create schema: %v", err)
	}

	router := routes.SetupRoutes(db, cfg, logger)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("Server started at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("Shutdown error: %v", err)
	}
}
