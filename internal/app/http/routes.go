package routes

import (
	"net/http"
	"time"

	adminapi "artist-portfolio/internal/api/admin"
	authapi "artist-portfolio/internal/api/auth"
	"artist-portfolio/internal/api/billing"
	siteapi "artist-portfolio/internal/api/site"
	stripewebhooks "artist-portfolio/internal/api/stripewebhook"
	worksapi "artist-portfolio/internal/api/works"
	"artist-portfolio/internal/app/http/middleware"
	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/pkg/token"
	"artist-portfolio/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	// image limit plus room for the other form fields
	adminBodyLimit = worksapi.MaxImageBytes + 1<<20

	loginAttempts = 10
	loginWindow   = 15 * time.Minute
)

type Deps struct {
	Issuer   *token.Issuer
	Sessions session.Store

	Auth     *authapi.Handler
	Google   *authapi.Google // nil when Google sign-in is off
	Works    *worksapi.Handler
	Site     *siteapi.Handler
	Admin    *adminapi.Handler
	Checkout *billing.Handler
	Webhook  *stripewebhooks.Handler

	// MediaDir is served under /media when images live on local disk.
	MediaDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// raw body, the signature covers it
	r.POST("/webhook", d.Webhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.MediaDir != "" {
		r.Static("/media", d.MediaDir)
	}

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/", d.Site.Home)
	public.GET("/pages", d.Site.Menu)
	for _, slug := range site.PublicPages {
		public.GET("/"+slug, d.Site.Page(slug))
	}

	public.GET("/portfolio", d.Works.Portfolio)
	public.GET("/portfolio/:slug", d.Works.PortfolioItem)
	public.POST("/portfolio/:slug/checkout", d.Checkout.CreateCheckoutSession)
	public.GET("/categories", d.Works.Categories)

	public.POST("/login", middleware.RateLimitMiddleware(loginAttempts, loginWindow), d.Auth.Login)

	if d.Google != nil {
		public.GET("/auth/google", d.Google.Start)
		public.GET("/auth/google/callback", d.Google.Callback)
	}

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.Issuer, d.Sessions))
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/session", d.Auth.Session)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Issuer, d.Sessions),
		middleware.RequireRole(users.RoleAdmin),
		middleware.BodyLimit(adminBodyLimit),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.GET("", d.Admin.Dashboard)
	admin.GET("/portfolio", d.Works.AdminPortfolio)
	admin.GET("/portfolio/:slug", d.Works.AdminArtwork)
	admin.GET("/portfolio/:slug/edit", d.Works.EditForm)
	admin.PUT("/portfolio/:slug/edit", d.Works.Edit)
	admin.POST("/portfolio/:slug/edit", d.Works.Edit)
	admin.POST("/upload", d.Works.Upload)
}
