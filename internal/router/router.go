package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)

	ProposeEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListFeed(c *ginext.Context)
	ListEventsByVenue(c *ginext.Context)
	ListCreatedEvents(c *ginext.Context)
	ListJoinedEvents(c *ginext.Context)
	ListPendingForOwner(c *ginext.Context)
	ListApprovedForOwner(c *ginext.Context)
	DecideEvent(c *ginext.Context)
	WithdrawEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)

	JoinEvent(c *ginext.Context)
	LeaveEvent(c *ginext.Context)
	IsParticipating(c *ginext.Context)
	ListParticipants(c *ginext.Context)

	ListVenues(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListMyVenues(c *ginext.Context)
	ListCategories(c *ginext.Context)

	CreateVenue(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	ListUsers(c *ginext.Context)
	BanUser(c *ginext.Context)
	AdminDeleteEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", authMW, h.Me)

		// Public reads
		api.GET("/events", h.ListEvents)
		api.GET("/feed", h.ListFeed)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/venues/:id/events", h.ListEventsByVenue)
		api.GET("/categories", h.ListCategories)

		// Event lifecycle
		authed := api.Group("", authMW)
		{
			authed.POST("/events", h.ProposeEvent)
			authed.PATCH("/events/:id/decision", h.DecideEvent)
			authed.DELETE("/events/:id/withdraw", h.WithdrawEvent)
			authed.DELETE("/events/:id", h.CancelEvent)

			// Participation
			authed.POST("/events/:id/join", h.JoinEvent)
			authed.DELETE("/events/:id/leave", h.LeaveEvent)
			authed.GET("/events/:id/participating", h.IsParticipating)
			authed.GET("/events/:id/participants", h.ListParticipants)

			// Caller-scoped reads
			authed.GET("/my/events", h.ListCreatedEvents)
			authed.GET("/my/joined", h.ListJoinedEvents)
			authed.GET("/my/venues", h.ListMyVenues)
			authed.GET("/my/moderation/pending", h.ListPendingForOwner)
			authed.GET("/my/moderation/approved", h.ListApprovedForOwner)
		}

		// Admin
		admin := api.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/users", h.ListUsers)
			admin.DELETE("/users/:id", h.BanUser)
			admin.DELETE("/events/:id", h.AdminDeleteEvent)
			admin.POST("/venues", h.CreateVenue)
			admin.POST("/categories", h.CreateCategory)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	promHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		promHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
