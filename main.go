package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"swishview/domain/repository"
	"swishview/infrastructure/cache"
	paypalclient "swishview/infrastructure/clients/paypal"
	stripeclient "swishview/infrastructure/clients/stripe"
	youtubeclient "swishview/infrastructure/clients/youtube"
	"swishview/infrastructure/configuration"
	"swishview/infrastructure/logger"
	"swishview/infrastructure/persistence"
	"swishview/infrastructure/pubsub"
	"swishview/infrastructure/servicebus"
	httpHandler "swishview/interfaces/http"
	"swishview/server"
	"swishview/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	db, vendor, err := InitiateDatabase()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	logger.GetLogger().WithField("vendor", vendor).Info("Database connected.")

	if vendor == "mssql" {
		if err := persistence.EnsureSchemaMSSQL(db); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring schema")
		}
	} else {
		if err := persistence.EnsureSchema(db); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring schema")
		}
	}

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without admin audit log")
		mongoDb = nil
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PubSub not available - campaign events disabled")
		pubSubClient = nil
	}
	campaignEvents := pubsub.NewCampaignEvents(pubSubClient, configuration.C.Pubsub.Topic)

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without ops alerts")
		azServiceBusClient = nil
	}
	opsAlerts := servicebus.NewOpsAlerts(azServiceBusClient, configuration.C.ServiceBus.Queue)

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	videoCache := cache.NewVideoCache(redisClient)

	// Repository wiring: use MSSQL in production, otherwise PostgreSQL.
	var campaignRepository repository.ICampaign
	var paymentRepository repository.IPayment
	var profileRepository repository.IProfile
	var analyticsRepository repository.IAnalytics
	if vendor == "mssql" {
		campaignRepository = persistence.NewCampaignRepositoryMSSQL(db)
		paymentRepository = persistence.NewPaymentRepositoryMSSQL(db)
		profileRepository = persistence.NewProfileRepositoryMSSQL(db)
		analyticsRepository = persistence.NewAnalyticsRepositoryMSSQL(db)
	} else {
		campaignRepository = persistence.NewCampaignRepository(db)
		paymentRepository = persistence.NewPaymentRepository(db)
		profileRepository = persistence.NewProfileRepository(db)
		analyticsRepository = persistence.NewAnalyticsRepository(db)
	}
	auditRepository := persistence.NewAuditRepository(mongoDb, "swishview")

	var youtubeClient repository.IYouTube
	if configuration.C.YouTube.APIKey != "" {
		client, err := youtubeclient.NewClient(ctx, configuration.C.YouTube.APIKey)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("YouTube client initialization failed - video metadata disabled")
		} else {
			youtubeClient = client
		}
	} else {
		logger.GetLogger().Info("YouTube API key not configured - video previews fall back to thumbnails only")
	}

	stripeGateway := stripeclient.NewGateway(configuration.C.Stripe.SecretKey, configuration.C.Stripe.WebhookSecret)
	paypalGateway := paypalclient.NewGateway(
		configuration.C.PayPal.ClientID,
		configuration.C.PayPal.ClientSecret,
		configuration.C.PayPal.BaseURL,
	)

	userUsecase := usecase.NewUserUsecase(profileRepository)
	campaignUsecase := usecase.NewCampaignUsecase(campaignRepository, videoCache, youtubeClient)
	analyticsUsecase := usecase.NewAnalyticsUsecase(campaignRepository, analyticsRepository, videoCache, youtubeClient)
	paymentUsecase := usecase.NewPaymentUsecase(
		campaignRepository,
		paymentRepository,
		[]repository.IPaymentGateway{stripeGateway, paypalGateway},
		campaignEvents,
		opsAlerts,
	)
	adminUsecase := usecase.NewAdminUsecase(campaignRepository, paymentRepository, profileRepository, analyticsRepository, auditRepository)

	userHandler := httpHandler.NewUserHandler(userUsecase)
	campaignHandler := httpHandler.NewCampaignHandler(campaignUsecase, analyticsUsecase)
	paymentHandler := httpHandler.NewPaymentHandler(paymentUsecase)
	webhookHandler := httpHandler.NewWebhookHandler(stripeGateway, paymentUsecase)
	adminHandler := httpHandler.NewAdminHandler(adminUsecase, analyticsUsecase)

	router := server.InitiateRouter(userHandler, campaignHandler, paymentHandler, webhookHandler, adminHandler)

	// Background analytics sync (view counts for active campaigns)
	syncInterval := time.Duration(configuration.C.Analytics.SyncIntervalSeconds) * time.Second
	g.Go(func() error {
		ticker := time.NewTicker(syncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				syncCtx, cancelSync := context.WithTimeout(ctx, time.Minute)
				if err := usecase.SyncCampaignAnalytics(syncCtx, campaignRepository, analyticsRepository, videoCache, youtubeClient, 50); err != nil {
					logger.GetLogger().WithField("error", err).Warn("analytics sync pass failed")
				}
				cancelSync()
			}
		}
	})

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if mongoDb != nil {
		_ = mongoDb.Disconnect(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// InitiateDatabase picks the SQL vendor: MSSQL in production or when
// DB_VENDOR=mssql, PostgreSQL otherwise.
func InitiateDatabase() (*sql.DB, string, error) {
	env := os.Getenv("ENV")
	if v := os.Getenv("DB_VENDOR"); v == "mssql" {
		db, err := persistence.NewMSSQLDB()
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Cannot connect to MSSQL (DB_VENDOR=mssql)")
			return nil, "", err
		}
		return db, "mssql", nil
	}
	if env == "production" || env == "prod" {
		db, err := persistence.NewMSSQLDB()
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Cannot connect to MSSQL (production)")
			return nil, "", err
		}
		return db, "mssql", nil
	}

	db, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to the local database")
		return nil, "", err
	}
	return db, "postgres", nil
}
