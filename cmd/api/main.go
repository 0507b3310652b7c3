package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vet-clinic-backend/internal/adapters/guardians/directory"
	pg "vet-clinic-backend/internal/adapters/storage/postgres"
	"vet-clinic-backend/internal/platform/config"
	"vet-clinic-backend/internal/platform/logger"
	"vet-clinic-backend/internal/ports/guardians"
	"vet-clinic-backend/internal/router"

	"gorm.io/gorm"
)

// @title Vet Clinic API
// @version 1.0
// @description Mascotas de la clínica veterinaria: alta, consulta, vacunas, desparasitaciones y recordatorios.
// @BasePath /api
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log := logger.NewFromEnv()
		log.Error("invalid config", map[string]any{"err": err.Error()})
		exit(log, 1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		File:   cfg.Log.File,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err.Error()})
		exit(log, 1)
	}
	exit(log, 0)
}

// exit vacía el logger antes de terminar: os.Exit no corre los defer.
func exit(log logger.Logger, code int) {
	if zl, ok := log.(*logger.ZapLogger); ok {
		_ = zl.Sync()
	}
	os.Exit(code)
}

func run(cfg *config.Config, log logger.Logger) error {
	var db *gorm.DB
	if cfg.DB.DSN != "" {
		sqlDB, err := pg.Open(cfg.DB.DSN, cfg.DB.ConnectTimeout)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		db, err = pg.NewGorm(sqlDB)
		if err != nil {
			return err
		}
		if cfg.DB.AutoMigrate {
			if err := pg.Migrate(db); err != nil {
				return err
			}
		}
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	var dir guardians.Directory
	if cfg.Guardians.BaseURL != "" {
		c, err := directory.NewClient(directory.Config{
			BaseURL: cfg.Guardians.BaseURL,
			APIKey:  cfg.Guardians.APIKey,
			Timeout: cfg.Guardians.Timeout,
			Retries: cfg.Guardians.Retries,
		})
		if err != nil {
			return err
		}
		dir = c
	}

	h := router.NewRouter(router.Options{
		DB:             db,
		Guardians:      dir,
		Logger:         log,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
