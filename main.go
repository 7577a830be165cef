// File: stitchdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stitchdesk/config"
	"stitchdesk/database"
	customerRepoPkg "stitchdesk/database/repository/customer"
	invoiceRepoPkg "stitchdesk/database/repository/invoice"
	"stitchdesk/handlers"
	"stitchdesk/middleware"
	"stitchdesk/routes"
	"stitchdesk/services/billing"
	"stitchdesk/services/payment"
	"stitchdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	invRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	custRepo := customerRepoPkg.NewMongoCustomerRepo()

	// services.
	invoiceService := &billing.DefaultInvoiceService{
		Repo:               invRepo,
		DefaultPayeeHandle: config.AppConfig.PayeeHandle,
		DefaultPayeeName:   config.AppConfig.PayeeName,
	}
	paymentRequestService := &payment.DefaultPaymentRequestService{
		Cache:    payment.NewRedisRenderCache(utils.GetCacheClient()),
		Currency: config.AppConfig.Currency,
	}

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, paymentRequestService)
	customerHandler := handlers.NewCustomerHandler(custRepo)

	routes.RegisterRoutes(router, invoiceHandler, customerHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
