// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"biofit/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler *handler.FoodHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler *handler.FoodHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler: params.FoodHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Per-user food routes
	userFoodsGroup := apiV1.Group("/users/:userId/foods")
	{
		userFoodsGroup.GET("", r.foodHandler.ListUserFoods)
		userFoodsGroup.POST("/defaults", r.foodHandler.SeedDefaultFoods)
	}

	// Food routes
	foodsGroup := apiV1.Group("/foods")
	{
		foodsGroup.POST("", r.foodHandler.CreateFood)
		foodsGroup.GET("/:id", r.foodHandler.GetFood)
		foodsGroup.PUT("/:id", r.foodHandler.UpdateFood)
		foodsGroup.DELETE("/:id", r.foodHandler.DeleteFood)
	}
}
