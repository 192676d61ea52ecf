package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-admin-backend/internal/config"
	"invoice-admin-backend/internal/models"
	"invoice-admin-backend/internal/repository"
	"invoice-admin-backend/internal/routes"
	"invoice-admin-backend/internal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on system env")
	}
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "invoice-admin",
		Short:        "Invoice dashboard backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg, true)
		},
	}

	var migrate bool
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg, migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", true, "Run migrations before serving")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run DB migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return err
			}
			slog.Info("migrations completed")
			return nil
		},
	}

	var name, email, password string
	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin user for the credentials sign-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || len(password) < 6 {
				return errors.New("--email and a --password of at least 6 characters are required")
			}
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			user := &models.User{ID: uuid.NewString(), Name: name, Email: email, Password: hash}
			if err := repository.NewUserRepository(db).Create(cmd.Context(), user); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	createUserCmd.Flags().StringVar(&name, "name", "", "Display name")
	createUserCmd.Flags().StringVar(&email, "email", "", "Sign-in email")
	createUserCmd.Flags().StringVar(&password, "password", "", "Sign-in password")

	root.AddCommand(serveCmd, migrateCmd, createUserCmd)
	return root
}

func serve(ctx context.Context, cfg config.Config, migrate bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	if migrate {
		if err := repository.Migrate(db); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, auth.NewSessions(cfg.SessionSecret))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
