package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/it23631960/pearl-logistics-admin/config"
	"github.com/it23631960/pearl-logistics-admin/internal/auth"
	"github.com/it23631960/pearl-logistics-admin/internal/backend"
	handler "github.com/it23631960/pearl-logistics-admin/internal/handler/http"
	"github.com/it23631960/pearl-logistics-admin/internal/logger"
	"github.com/it23631960/pearl-logistics-admin/internal/middleware"
	"github.com/it23631960/pearl-logistics-admin/internal/service"
	"github.com/it23631960/pearl-logistics-admin/internal/validation"
	"github.com/it23631960/pearl-logistics-admin/internal/worker"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenKey, err := hex.DecodeString(cfg.AuthTokenKey)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// store backend client
	client := backend.NewClient(cfg.BackendURL)

	// session board shared by the aggregator and the status manager
	board := service.NewOrderBoard()

	validate := validation.New()

	// dependency injection
	// orders
	enrichService := service.NewEnrichService(client, board, cfg.EnrichLimit)
	statusService := service.NewStatusService(client, board)
	orderHandler := handler.NewOrderHandler(enrichService, statusService, validate)

	// categories
	categoryService := service.NewCategoryService(client)
	categoryHandler := handler.NewCategoryHandler(categoryService, validate)

	// background board refresh
	refresher := worker.NewBoardRefresher(enrichService, cfg.RefreshInterval)
	go refresher.Run(ctx)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Get("/api/admin/orders", orderHandler.ListOrders())
		group.Get("/api/admin/orders/{orderID}", orderHandler.ViewOrder())
		group.Delete("/api/admin/orders/selection", orderHandler.CloseOrderView())
		group.Put("/api/admin/orders/{orderID}/status", orderHandler.UpdateOrderStatus())
		group.Get("/api/admin/categories", categoryHandler.ListCategories())
		group.Post("/api/admin/categories", categoryHandler.CreateCategory())
		group.Delete("/api/admin/categories/{categoryID}", categoryHandler.DeleteCategory())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.AdminServerAddr))

	if err := http.ListenAndServe(cfg.AdminServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
