package routes

import (
	"net/http"
	"time"

	"stitchdesk/handlers"
	"stitchdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers invoice billing endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, ih *handlers.InvoiceHandler) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.POST("", ih.CreateInvoiceHandler)
		api.GET("", ih.ListInvoicesHandler)
		api.GET("/:id", ih.GetInvoiceByIDHandler)
		api.PUT("/:id", ih.UpdateInvoiceHandler)
		api.DELETE("/:id", ih.DeleteInvoiceHandler)
		api.POST("/:id/payments", ih.RecordPaymentHandler)
		api.POST("/:id/payment-request", ih.PaymentRequestHandler)
	}
}

// RegisterCustomerRoutes registers customer record endpoints.
func RegisterCustomerRoutes(r *gin.Engine, ch *handlers.CustomerHandler) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.POST("", ch.CreateCustomerHandler)
		api.GET("", ch.ListCustomersHandler)
		api.GET("/:id", ch.GetCustomerByIDHandler)
		api.PUT("/:id", ch.UpdateCustomerHandler)
		api.DELETE("/:id", ch.DeleteCustomerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stitchdesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ih *handlers.InvoiceHandler, ch *handlers.CustomerHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInvoiceRoutes(r, ih)
	RegisterCustomerRoutes(r, ch)
	RegisterHealthRoute(r)
}
