package leave

import (
	"github.com/gin-gonic/gin"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	group := r.Group("/leaves")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", rbac.Authorize(enforcer, "leave", "create"), middleware.RequireEmployee(), handler.Apply)
		group.GET("", rbac.Authorize(enforcer, "leave", "read"), handler.GetAll)
		group.GET("/:id", rbac.Authorize(enforcer, "leave", "read"), handler.GetByID)
		group.PATCH("/:id/status", rbac.Authorize(enforcer, "leave", "approve"), handler.Decide)
	}
}
