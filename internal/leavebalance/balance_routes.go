package leavebalance

import (
	"github.com/Ishani018/alms-ishani/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.UserResolver) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware(resolver))
	{
		balances.GET("", handler.GetOwn)
	}
}
