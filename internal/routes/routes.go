package routes

import (
	"time"

	"github.com/goodacts/goodacts-backend/internal/admin"
	"github.com/goodacts/goodacts-backend/internal/config"
	"github.com/goodacts/goodacts-backend/internal/handlers"
	"github.com/goodacts/goodacts-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	actHandler *handlers.ActHandler,
	commentHandler *handlers.CommentHandler,
	likeHandler *handlers.LikeHandler,
	challengeHandler *handlers.ChallengeHandler,
	contactHandler *handlers.ContactHandler,
	userHandler *handlers.UserHandler,
	chainHandler *handlers.ChainHandler,
	healthHandler *handlers.HealthHandler,
	adminHandler *admin.Handler,
) {
	// Plain controllers kept at the root, as the web client expects.
	app.Post("/act/new", middleware.JWTLenient(cfg), actHandler.CreateJSON)
	app.Post("/contact/new", contactHandler.Create)
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Registration and sessions, with a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimiter, authHandler.Register)
	auth := api.Group("/auth", authLimiter)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Acts
	api.Get("/acts", actHandler.List)
	api.Get("/acts/:id", actHandler.GetByID)
	api.Get("/acts/:id/comments", commentHandler.ListForAct)
	api.Post("/acts", middleware.JWTLenient(cfg), actHandler.CreateMultipart)
	api.Post("/acts/:id/like", middleware.JWTProtected(cfg), likeHandler.Like)
	api.Delete("/acts/:id/like", middleware.JWTProtected(cfg), likeHandler.Unlike)

	// Comments
	api.Post("/comments", middleware.JWTProtected(cfg), commentHandler.Create)
	api.Delete("/comments/:id", middleware.JWTProtected(cfg), commentHandler.Delete)

	// Challenges: reads public, writes authenticated
	api.Get("/challenges", challengeHandler.List)
	api.Get("/challenges/:id", challengeHandler.GetByID)
	api.Post("/challenges", middleware.JWTProtected(cfg), challengeHandler.Create)
	api.Put("/challenges/:id", middleware.JWTProtected(cfg), challengeHandler.Update)

	// Users: collection admin-only, item public with shaped fields
	api.Get("/users", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), userHandler.List)
	api.Get("/users/:id", userHandler.GetPublic)

	// Referral chains
	api.Get("/chains/:token", chainHandler.Resolve)

	// Back office
	adm := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	adm.Get("/dashboard", adminHandler.Dashboard)

	adm.Get("/users", userHandler.List)
	adm.Post("/users", adminHandler.CreateUser)
	adm.Get("/users/:id", adminHandler.GetUser)
	adm.Put("/users/:id", adminHandler.UpdateUser)
	adm.Delete("/users/:id", adminHandler.DeleteUser)

	adm.Get("/acts", adminHandler.ListActs)
	adm.Put("/acts/:id", adminHandler.UpdateAct)
	adm.Delete("/acts/:id", adminHandler.DeleteAct)

	adm.Get("/challenges", adminHandler.ListChallenges)
	adm.Post("/challenges", challengeHandler.Create)
	adm.Put("/challenges/:id", challengeHandler.Update)
	adm.Delete("/challenges/:id", adminHandler.DeleteChallenge)

	adm.Get("/comments", adminHandler.ListComments)
	adm.Delete("/comments/:id", adminHandler.DeleteComment)

	adm.Get("/likes", adminHandler.ListLikes)
	adm.Delete("/likes/:id", adminHandler.DeleteLike)

	adm.Get("/locations", adminHandler.ListLocations)
	adm.Post("/locations", adminHandler.CreateLocation)
	adm.Put("/locations/:id", adminHandler.UpdateLocation)
	adm.Delete("/locations/:id", adminHandler.DeleteLocation)

	adm.Get("/chains", adminHandler.ListChains)
	adm.Delete("/chains/:id", adminHandler.DeleteChain)

	adm.Get("/contacts", adminHandler.ListContacts)
	adm.Delete("/contacts/:id", adminHandler.DeleteContact)
}
