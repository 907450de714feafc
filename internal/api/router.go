package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/api/handler"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/api/middleware"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/service"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/token"
	mongodb "github.com/vipulmaurya2223/expense-splitter-api/internal/infrastructure/db/mongo"
)

// Deps carries the shared infrastructure the router wires handlers to.
type Deps struct {
	Mongo    *mongo.Database
	Redis    *redis.Client
	Issuer   *token.Issuer
	Limiter  middleware.AttemptLimiter
	Recorder service.ActivityRecorder
	Activity ports.ActivityService
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("expense_splitter_http"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	groupRepo := mongodb.NewGroupRepository(deps.Mongo)
	expenseRepo := mongodb.NewExpenseRepository(deps.Mongo)

	authService := service.NewAuthService(userRepo, deps.Issuer, deps.Recorder, deps.Log)
	groupService := service.NewGroupService(groupRepo, userRepo, deps.Recorder, deps.Log)
	expenseService := service.NewExpenseService(expenseRepo, deps.Recorder, deps.Log)
	userService := service.NewUserService(userRepo, groupRepo, expenseRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	groupHandler := handler.NewGroupHandler(groupService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(deps.Issuer)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, middleware.LoginRateLimit(deps.Limiter, deps.Log))
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Protected resource routes ---
	groups := e.Group("/api/groups", authMiddleware)
	groups.GET("", groupHandler.List)
	groups.POST("", groupHandler.Create)
	groups.GET("/:id", groupHandler.Get)
	groups.PUT("/:id", groupHandler.Rename)
	groups.DELETE("/:id", groupHandler.Delete)
	groups.POST("/:id/members", groupHandler.AddMember)
	groups.DELETE("/:id/members/:userId", groupHandler.RemoveMember)
	groups.PUT("/:id/pin", groupHandler.TogglePin)

	expenses := e.Group("/api/expenses", authMiddleware)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	users := e.Group("/api/users", authMiddleware)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Admin-only audit trail ---
	activityHandler := handler.NewActivityHandler(deps.Activity)
	activities := e.Group("/api/activities", authMiddleware, middleware.RequireRole(domain.RoleAdmin))
	activities.GET("", activityHandler.List)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
