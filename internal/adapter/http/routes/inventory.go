package routes

import (
	"paulocell_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", inventoryHandler.CreateItem)
		inventory.GET("", inventoryHandler.ListItems)
		inventory.GET("/low-stock", inventoryHandler.ListLowStock)
		inventory.GET("/:id", inventoryHandler.GetItem)
		inventory.PUT("/:id", inventoryHandler.UpdateItem)
		inventory.POST("/:id/adjust", inventoryHandler.AdjustStock)
		inventory.DELETE("/:id", inventoryHandler.DeleteItem)
	}
}
