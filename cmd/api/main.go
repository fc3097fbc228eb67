// @title Dogs Adoption API
// @version 1.0
// @description Registro de perros en adopción y de sus dueños.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dogs-adoption/internal/adapters/auth/jwtauth"
	idmem "dogs-adoption/internal/adapters/identity/memory"
	"dogs-adoption/internal/adapters/pictures/dogceo"
	pg "dogs-adoption/internal/adapters/storage/postgres"
	lite "dogs-adoption/internal/adapters/storage/sqlite"
	"dogs-adoption/internal/domain/identity"
	"dogs-adoption/internal/platform/config"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// hashpw <password>: imprime el hash bcrypt para AUTH_PASSWORD_HASH.
	if len(os.Args) > 1 && os.Args[1] == "hashpw" {
		if err := hashPassword(os.Args[2:], cfg.Auth.BcryptCost); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	if cfg.InsecureSecret() {
		log.Warn("AUTH_SECRET_KEY not set, using development secret", nil)
	}

	db, err := openStorage(context.Background(), cfg.Storage)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	log.Info("storage ready", map[string]any{"driver": cfg.Storage.Driver})

	identities, err := idmem.NewStore(identity.Identity{
		Username:       cfg.Auth.Username,
		FullName:       cfg.Auth.FullName,
		Email:          cfg.Auth.Email,
		HashedPassword: cfg.Auth.PasswordHash,
		Disabled:       cfg.Auth.Disabled,
	})
	if err != nil {
		return err
	}

	codec, err := jwtauth.New(cfg.Auth.SecretKey)
	if err != nil {
		return err
	}

	pictures := dogceo.New(dogceo.Config{
		URL:      cfg.Pictures.URL,
		Fallback: cfg.Pictures.Fallback,
		Timeout:  cfg.Pictures.Timeout,
	}, log)

	r := router.NewRouter(router.Options{
		Logger:     log,
		Driver:     cfg.Storage.Driver,
		DB:         db,
		Identities: identities,
		Tokens:     codec,
		Pictures:   pictures,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

// openStorage devuelve nil para el driver en memoria.
func openStorage(ctx context.Context, cfg config.StorageConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	case config.DriverSQLite:
		db, err := lite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := lite.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, nil
	}
}

func hashPassword(args []string, cost int) error {
	if len(args) != 1 {
		return errors.New("usage: api hashpw <password>")
	}
	hash, err := identity.HashPassword(args[0], cost)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
