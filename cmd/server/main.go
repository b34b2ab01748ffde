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

	"lru-cache-api/internal/auth"
	"lru-cache-api/internal/config"
	"lru-cache-api/internal/database"
	"lru-cache-api/internal/realtime"
	"lru-cache-api/internal/routes"
	"lru-cache-api/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "lru-cache-api",
		Short:        "Serve an LRU cache in front of a SQLite record store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "configuration file (yaml, toml or json)")
	flags.Int("port", 8008, "HTTP listen port")
	flags.Int("capacity", 128, "maximum number of cached entries")
	flags.String("db", "cache-records.db", "SQLite database file")
	bindFlag(v, "server.port", cmd, "port")
	bindFlag(v, "cache.capacity", cmd, "capacity")
	bindFlag(v, "database.path", cmd, "db")

	return cmd
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		log.Fatalf("bind flag %s: %v", name, err)
	}
}

func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	// SIGINT/SIGTERM cancel ctx and start a clean shutdown.
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, key := range cfg.Auth.InsecureDefaults() {
		log.Printf("WARNING: %s is still the development default; set %s_%s before exposing the server",
			key, config.EnvPrefix, strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}

	if err := auth.Configure(cfg.Auth); err != nil {
		return fmt.Errorf("configure auth: %w", err)
	}

	database.InitDB(cfg.Database.Path)

	hub := realtime.GetHub()
	svc, err := service.NewRecordService(cfg.Cache.Capacity, database.NewRecordStore(database.GetDB()), hub)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           routes.SetupRoutes(svc, hub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Server starting on port %d (cache capacity %d)", cfg.Server.Port, cfg.Cache.Capacity)
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/records/:key")
	log.Println("  PUT    /api/records/:key")
	log.Println("  DELETE /api/records/:key")
	log.Println("  GET    /api/cache")
	log.Println("  DELETE /api/cache")
	log.Println("  GET    /api/cache/keys")
	log.Println("  GET    /api/cache/stats")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		log.Println("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
