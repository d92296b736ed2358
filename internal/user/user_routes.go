package user

import (
	"github.com/Ishani018/alms-ishani/internal/auth"
	"github.com/Ishani018/alms-ishani/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.UserResolver) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(resolver))
	users.Use(middleware.RequireRoles(auth.RoleHR, auth.RoleAdmin))
	{
		users.GET("", handler.List)
		users.GET("/options", handler.Options)
		users.GET("/:id", handler.GetByID)
		users.PUT("/:id/manager", handler.AssignManager)
	}
}
