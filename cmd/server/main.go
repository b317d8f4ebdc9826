package main

import (
	"context"
	"errors"
	"log"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/httpapi"
	"taskboard/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB and create tables
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	log.Printf("Database initialized at %s", cfg.Database.Path)

	users := repository.NewUserRepository(d)
	tasks := repository.NewTaskRepository(d)
	srv := httpapi.NewServer(cfg, users, tasks, func(ctx context.Context) error { return db.Ping(ctx, d) })

	// Start HTTP
	shutdown, err := httpapi.Start(cfg, srv)
	if err != nil {
		_ = d.Close()
		log.Fatalf("start http: %v", err)
	}
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	// Drain HTTP first so no handler runs against a closed pool.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.HTTP.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"server": func(ctx context.Context) error {
				return errors.Join(shutdown(ctx), d.Close())
			},
		},
	)

	exitCode := <-wait
	log.Printf("Server exited with code: %d", exitCode)
	os.Exit(exitCode)
}
