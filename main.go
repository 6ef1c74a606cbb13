package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "cucisepatu/internal/config"
	router "cucisepatu/internal/http"
	"cucisepatu/internal/repositories"
	"cucisepatu/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		bootLogger := utils.NewLogger("info", "console")
		bootLogger.Fatal().Err(err).Msg("gagal memuat konfigurasi")
	}
	logger := utils.NewLogger(env.LogLevel, env.LogFormat)

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store, db, err := openStore(env, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", env.DBDriver).Msg("gagal menyiapkan data store")
	}
	if db != nil {
		defer db.Close()
	}

	r := router.NewRouter(env, store, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", env.AppAddr).Str("driver", env.DBDriver).Msg("server berjalan")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("gagal menjalankan server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), env.ShutdownGrace())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown server gagal")
		return
	}

	logger.Info().Msg("server berhenti dengan aman")
}

// openStore returns the OrderStore for env.DBDriver. db is nil for the
// in-memory store.
func openStore(env intconfig.Env, logger zerolog.Logger) (repositories.OrderStore, *sql.DB, error) {
	if env.DBDriver == repositories.DriverMemory {
		logger.Warn().Msg("DB_DRIVER=memory, data hilang saat proses berhenti")
		return repositories.NewMemoryStore(), nil, nil
	}

	db, err := intconfig.OpenDB(context.Background(), env)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repositories.NewOrderRepository(db, env.DBDriver)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info().Str("driver", env.DBDriver).Msg("berhasil konek ke database")
	return repo, db, nil
}
