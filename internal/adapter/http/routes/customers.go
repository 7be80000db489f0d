package routes

import (
	"paulocell_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/trash", customerHandler.ListTrash)
		customers.DELETE("/trash", customerHandler.EmptyTrash)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.TrashCustomer)
		customers.POST("/:id/restore", customerHandler.RestoreCustomer)
		customers.DELETE("/:id/purge", customerHandler.PurgeCustomer)
	}
}
