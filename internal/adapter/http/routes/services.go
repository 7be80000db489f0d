package routes

import (
	"paulocell_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addServiceRoutes(
	rg *gin.RouterGroup,
	deviceHandler *handlers.DeviceHandler,
	serviceHandler *handlers.ServiceHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
) {
	devices := rg.Group(PathDevices)
	{
		devices.POST("", deviceHandler.CreateDevice)
		devices.GET("", deviceHandler.ListDevices)
		devices.GET("/:id", deviceHandler.GetDevice)
		devices.PUT("/:id", deviceHandler.UpdateDevice)
		devices.DELETE("/:id", deviceHandler.DeleteDevice)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.PATCH("/:id/status", serviceHandler.ChangeStatus)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.GET("/:id/receipt", exportHandler.ServiceReceiptPDF)
		services.POST("/:id/payments", paymentHandler.ChargeService)
		services.GET("/:id/payments", paymentHandler.ListServicePayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}
