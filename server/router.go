package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"swishview/infrastructure/configuration"
	httpHandler "swishview/interfaces/http"
	"swishview/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	campaignHandler httpHandler.ICampaignHandler,
	paymentHandler httpHandler.IPaymentHandler,
	webhookHandler httpHandler.IWebhookHandler,
	adminHandler httpHandler.IAdminHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	origins := configuration.C.App.FrontendOrigins
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		MaxAge: 12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Provider callbacks carry their own authentication (the signature
	// header), so they stay outside the JWT group.
	if webhookHandler != nil {
		router.POST("/webhooks/stripe", webhookHandler.StripeWebhook)
	}

	api := router.Group("api")
	api.Use(middleware.Auth())

	campaigns := api.Group("/campaigns")
	{
		campaigns.POST("", campaignHandler.Create)
		campaigns.GET("", campaignHandler.List)
		campaigns.GET("/:id", campaignHandler.Get)
		campaigns.PUT("/:id", campaignHandler.Update)
		campaigns.GET("/:id/analytics", campaignHandler.Analytics)
	}
	api.GET("/videos/preview", campaignHandler.VideoPreview)

	payments := api.Group("/payments")
	{
		payments.POST("/checkout", paymentHandler.Checkout)
		payments.POST("/confirm", paymentHandler.Confirm)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/campaigns", adminHandler.ListCampaigns)
		admin.PATCH("/campaigns/:id/status", adminHandler.SetCampaignStatus)
		admin.GET("/campaigns/:id/payments", adminHandler.ListPayments)
		admin.POST("/users/promote", adminHandler.PromoteToAdmin)
		admin.GET("/stats", adminHandler.Stats)
		admin.POST("/analytics/sync", adminHandler.SyncAnalytics)
	}

	return router
}
