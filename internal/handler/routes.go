// Package handler is the gin HTTP adapter: request binding, error to status
// mapping, and the route table.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Auth       *AuthHandler
	Clubs      *ClubHandler
	Users      *UserHandler
	Categories *CategoryHandler
	Events     *EventHandler
	DB         Pinger
	Metrics    http.Handler
}

// SetupRoutes mounts every route on r. Reads under /api are public; writes
// go through requireAuth.
func SetupRoutes(r *gin.Engine, h Handlers, requireAuth gin.HandlerFunc) {
	// Public Routes
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.GET("/healthz", h.health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	api := r.Group("/api")
	{
		// CLUBS
		api.GET("/clubs", h.Clubs.List)
		api.GET("/clubs/:id", h.Clubs.Get)
		api.GET("/clubs/:id/organizer", h.Clubs.Organizer)
		api.GET("/clubs/:id/followers", h.Clubs.Followers)
		api.GET("/clubs/:id/registered", h.Clubs.Registered)
		api.GET("/clubs/:id/events", h.Clubs.Events)
		api.GET("/clubs/:id/categories", h.Clubs.Categories)

		// USERS
		api.GET("/users", h.Users.List)
		api.GET("/users/:id", h.Users.Get)
		api.GET("/users/:id/following", h.Users.Following)
		api.GET("/users/:id/organizing", h.Users.Organizing)
		api.GET("/users/:id/organizing/:clubId", h.Users.IsOrganizing)

		// CATEGORIES
		api.GET("/categories", h.Categories.List)
		api.GET("/categories/:id/clubs", h.Categories.Clubs)

		// EVENTS
		api.GET("/events", h.Events.List)
		api.GET("/events/:id", h.Events.Get)
	}

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(requireAuth)
	{
		authorized.POST("/clubs", h.Clubs.Create)
		authorized.PUT("/clubs/:id", h.Clubs.Update)
		authorized.DELETE("/clubs/:id", h.Clubs.Delete)
		authorized.PUT("/clubs/:id/organizer", h.Clubs.ReassignOrganizer)
		authorized.POST("/clubs/:id/categories", h.Clubs.AddCategory)
		authorized.PUT("/clubs/:id/categories", h.Clubs.ReplaceCategories)
		authorized.DELETE("/clubs/:id/categories/:categoryId", h.Clubs.RemoveCategory)

		authorized.POST("/users", h.Users.Create)
		authorized.PUT("/users/:id", h.Users.Update)
		authorized.DELETE("/users/:id", h.Users.Delete)
		authorized.POST("/users/:id/following", h.Users.Follow)
		authorized.DELETE("/users/:id/following/:clubId", h.Users.Unfollow)

		authorized.POST("/categories", h.Categories.Create)

		authorized.POST("/events", h.Events.Create)
		authorized.PUT("/events/:id", h.Events.Update)
		authorized.DELETE("/events/:id", h.Events.Delete)
	}
}

func (h Handlers) health(c *gin.Context) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			jsonError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
