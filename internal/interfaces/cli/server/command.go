// Package server implements the `server` CLI command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	planUC "github.com/lobelia-inc/lobelia/internal/application/plan/usecases"
	subscriptionUC "github.com/lobelia-inc/lobelia/internal/application/subscription/usecases"
	userUC "github.com/lobelia-inc/lobelia/internal/application/user/usecases"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/config"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/database"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/identity"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/notification"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/payment"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/repository"
	httpRouter "github.com/lobelia-inc/lobelia/internal/interfaces/http"
	"github.com/lobelia-inc/lobelia/internal/interfaces/http/handlers"
	"github.com/lobelia-inc/lobelia/internal/shared/goroutine"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
	"github.com/lobelia-inc/lobelia/internal/shared/version"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Lobelia HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "version", version.String())

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	planRepo := repository.NewPlanRepository(database.Get(), log)
	userRepo := repository.NewUserAccountRepository(database.Get(), log)
	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)

	identityProvider := identity.NewMemoryProvider(cfg.Identity.BcryptCost, log)
	paymentGateway := payment.NewFakeGateway(cfg.Payment.Succeed, log)
	notifier := buildNotifier(cfg, log)

	createPlanUC := planUC.NewCreatePlanUseCase(planRepo, log)
	createUserAccountUC := userUC.NewCreateUserAccountUseCase(identityProvider, userRepo, log)
	subscribeToPlanUC := subscriptionUC.NewSubscribeToPlanUseCase(subscriptionRepo, userRepo, planRepo, paymentGateway, notifier, log)
	renewSubscriptionUC := subscriptionUC.NewRenewSubscriptionUseCase(subscriptionRepo, userRepo, paymentGateway, notifier, log)
	cancelSubscriptionUC := subscriptionUC.NewCancelSubscriptionUseCase(subscriptionRepo, log)

	router := httpRouter.NewRouter(
		handlers.NewPlanHandler(createPlanUC),
		handlers.NewUserAccountHandler(createUserAccountUC),
		handlers.NewSubscriptionHandler(subscribeToPlanUC, renewSubscriptionUC, cancelSubscriptionUC),
		log,
	)
	router.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	goroutine.SafeGo(log, "http-server", func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func buildNotifier(cfg *config.Config, log logger.Interface) subscriptionUC.NotificationService {
	if cfg.Notification.Channel == "email" {
		return notification.NewEmailNotifier(&cfg.Email, log)
	}
	return notification.NewConsoleNotifier(log)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
