package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-admin-backend/internal/handlers"
	"invoice-admin-backend/internal/repository"
	"invoice-admin-backend/internal/services/auth"
	"invoice-admin-backend/internal/services/invoicing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions *auth.Sessions) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)

	listing := invoicing.NewListingCache(invoiceRepo.List)
	invoiceService := invoicing.NewInvoiceService(invoiceRepo, listing)
	authenticator := auth.NewAuthenticator(auth.NewCredentialsProvider(userRepo))

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	authHandler := handler.NewAuthHandler(authenticator, sessions)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET(handler.LoginPath, authHandler.LoginForm)
	r.POST(handler.LoginPath, authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	dashboard := r.Group(auth.DashboardPath, handler.RequireAuth(sessions))
	dashboard.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": handler.UserID(c), "invoices": invoicing.ListingPath})
	})

	invoices := dashboard.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Show)
		invoices.POST("/:id/edit", invoiceHandler.Update)
		invoices.POST("/:id/delete", invoiceHandler.Delete)
	}
}
