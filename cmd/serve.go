package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "defect-tracker.com/defect-tracker/internal/configs"
	httpapi "defect-tracker.com/defect-tracker/internal/http"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
	"defect-tracker.com/defect-tracker/internal/services"
	"defect-tracker.com/defect-tracker/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the defect tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute

		var store sessions.Store
		if cfg.SessionBackend == "redis" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			store = sessions.NewRedisStore(redisClient, cfg.SessionKeyPrefix, sessionTTL)
		} else {
			store = sessions.NewMemoryStore(sessionTTL)
		}

		taskRepo := repository.NewTaskRepository(database)
		defectRepo := repository.NewDefectRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		userRepo := repository.NewUserRepository(database)

		handler := httpapi.NewHandler(
			services.NewTaskService(taskRepo),
			services.NewDefectService(defectRepo),
			services.NewProjectService(projectRepo),
			services.NewUserService(userRepo),
			services.NewAuthService(userRepo, store),
			cfg.SessionCookieName,
			sessionTTL,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(e, handler, store, cfg.SessionCookieName, cfg.CORSOrigins, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
