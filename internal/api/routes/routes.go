package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adayportal/backend/internal/api/handlers"
	"github.com/adayportal/backend/internal/api/middleware"
	"github.com/adayportal/backend/internal/services"
)

type Deps struct {
	Application *handlers.ApplicationHandler
	Admin       *handlers.AdminHandler
	Auth        *handlers.AuthHandler
	AuthService services.AuthService
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", d.Application.FormPage)
	r.POST("/submit", d.Application.Submit)

	r.GET("/login", d.Auth.LoginPage)
	r.POST("/login", d.Auth.Login)
	r.POST("/logout", d.Auth.Logout)

	// Admin area behind the session guard
	admin := r.Group("/")
	admin.Use(middleware.AdminSession(d.AuthService))
	admin.GET("/admin", d.Admin.List)
}
