// Package http wires the gin engine, middleware and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lobelia-inc/lobelia/internal/infrastructure/config"
	"github.com/lobelia-inc/lobelia/internal/interfaces/http/handlers"
	"github.com/lobelia-inc/lobelia/internal/interfaces/http/middleware"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
	"github.com/lobelia-inc/lobelia/internal/shared/version"
)

type Router struct {
	engine              *gin.Engine
	planHandler         *handlers.PlanHandler
	userAccountHandler  *handlers.UserAccountHandler
	subscriptionHandler *handlers.SubscriptionHandler
	logger              logger.Interface
}

func NewRouter(
	planHandler *handlers.PlanHandler,
	userAccountHandler *handlers.UserAccountHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	log logger.Interface,
) *Router {
	return &Router{
		engine:              gin.New(),
		planHandler:         planHandler,
		userAccountHandler:  userAccountHandler,
		subscriptionHandler: subscriptionHandler,
		logger:              log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	})

	v1 := r.engine.Group("/api/v1")
	{
		v1.POST("/plans", r.planHandler.CreatePlan)
		v1.POST("/users", r.userAccountHandler.CreateUserAccount)

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("", r.subscriptionHandler.SubscribeToPlan)
			subscriptions.POST("/:id/renew", r.subscriptionHandler.RenewSubscription)
			subscriptions.POST("/:id/cancel", r.subscriptionHandler.CancelSubscription)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
