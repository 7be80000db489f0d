package routes

import (
	"github.com/gin-gonic/gin"
)

// addSystemRoutes covers the shop-wide endpoints: notifications, settings,
// postal code lookup, dashboard, exports and backups.
func addSystemRoutes(rg *gin.RouterGroup, h Handlers) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.Notification.ListNotifications)
		notifications.POST("", h.Notification.CreateNotification)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.POST("/read-all", h.Notification.MarkAllRead)
		notifications.PATCH("/:id/read", h.Notification.MarkRead)
		notifications.DELETE("/:id", h.Notification.DeleteNotification)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.SaveSettings)
	}

	rg.GET(PathPostalCodes+"/:cep", h.PostalCode.LookupPostalCode)
	rg.GET(PathDashboard, h.Dashboard.GetSummary)
	rg.GET(PathExports+"/:dataset", h.Export.ExportDataset)

	backup := rg.Group(PathBackup)
	{
		backup.GET("", h.Backup.ExportBackup)
		backup.POST("/restore", h.Backup.RestoreBackup)
	}
}
