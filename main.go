package main

import (
	"context"
	"strings"
	"time"

	"artist-portfolio/config"
	"artist-portfolio/database"
	adminapi "artist-portfolio/internal/api/admin"
	authapi "artist-portfolio/internal/api/auth"
	"artist-portfolio/internal/api/billing"
	siteapi "artist-portfolio/internal/api/site"
	stripewebhooks "artist-portfolio/internal/api/stripewebhook"
	worksapi "artist-portfolio/internal/api/works"
	routes "artist-portfolio/internal/app/http"
	"artist-portfolio/internal/app/http/middleware"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/token"
	"artist-portfolio/internal/repository"
	"artist-portfolio/internal/session"
	"artist-portfolio/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func openStore(ctx context.Context) (storage.ObjectStore, string) {
	cfg := config.Storage
	if cfg.Driver == config.StorageDriverS3 {
		s3, err := storage.NewS3Store(ctx, cfg)
		if err != nil {
			logger.Log.WithError(err).Fatal("s3 storage init failed")
		}
		if err := s3.EnsureBucket(ctx, cfg.S3Region); err != nil {
			logger.Log.WithError(err).WithField("bucket", cfg.Bucket).Fatal("s3 bucket unavailable")
		}
		logger.Log.WithField("bucket", cfg.Bucket).Info("storing images in s3")
		return s3, ""
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + config.PORT + "/media"
	}
	local, err := storage.NewLocalStore(cfg.LocalDir, baseURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("local storage init failed")
	}
	logger.Log.WithField("dir", local.Root()).Info("storing images on local disk")
	return local, local.Root()
}

func openSessions(ctx context.Context) session.Store {
	if config.REDIS_URL == "" {
		return session.NewMemoryStore()
	}
	client, err := session.NewRedisClient(ctx, config.REDIS_URL)
	if err != nil {
		logger.Log.WithError(err).Fatal("redis connection failed")
	}
	return session.NewRedisStore(client)
}

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger.Init(config.LOG_LEVEL, config.LOG_FORMAT)
	database.InitDB(config.DB_URL)

	if err := database.SeedAdmin(database.DB, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		logger.Log.WithError(err).Fatal("seed admin failed")
	}
	if err := database.SeedPages(database.DB); err != nil {
		logger.Log.WithError(err).Fatal("seed pages failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, mediaDir := openStore(ctx)
	sessions := openSessions(ctx)
	cancel()

	stripe.Key = config.STRIPE_SECRET_KEY

	artworks := repository.NewGormArtworks(database.DB)
	issuer := token.NewIssuer(config.JWT_SECRET, token.DefaultTTL)
	authHandler := authapi.NewHandler(repository.NewGormUsers(database.DB), issuer, sessions)

	var google *authapi.Google
	if config.GoogleEnabled() {
		google = authapi.NewGoogle(authHandler, authapi.GoogleConfig{
			ClientID:         config.GOOGLE_CLIENT_ID,
			ClientSecret:     config.GOOGLE_CLIENT_SECRET,
			RedirectURL:      config.GOOGLE_REDIRECT_URL,
			FrontendRedirect: config.GOOGLE_FRONTEND_REDIRECT,
			SecureCookie:     strings.HasPrefix(config.APP_URL, "https://"),
		})
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS must run before the route handlers
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Issuer:   issuer,
		Sessions: sessions,
		Auth:     authHandler,
		Google:   google,
		Works:    worksapi.NewHandler(artworks, store, worksapi.NewPriceFormatter(config.STORE_CURRENCY)),
		Site:     siteapi.NewHandler(repository.NewGormPages(database.DB), artworks),
		Admin:    adminapi.NewHandler(artworks),
		Checkout: billing.NewHandler(artworks, billing.Config{
			Enabled:  config.StripeEnabled(),
			Currency: config.STORE_CURRENCY,
			AppURL:   config.APP_URL,
		}),
		Webhook:  stripewebhooks.NewHandler(artworks, config.STRIPE_WEBHOOK_SECRET),
		MediaDir: mediaDir,
	})

	logger.Log.WithField("port", config.PORT).Info("server starting")
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
