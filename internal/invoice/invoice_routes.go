package invoice

import (
	"github.com/gin-gonic/gin"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	group := r.Group("/invoices")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", rbac.Authorize(enforcer, "invoice", "create"), handler.Create)
		group.GET("", rbac.Authorize(enforcer, "invoice", "read"), handler.GetAll)
		group.GET("/:id", rbac.Authorize(enforcer, "invoice", "read"), handler.GetByID)
	}
}
