package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "paulocell_pdv/internal/adapter/http/dto/request"
	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// @Summary  List notifications, newest first
// @Tags     notifications
// @Produce  json
// @Param    unread  query  bool  false  "Only unread notifications"
// @Success  200  {object}  response.ListResponse[entities.Notification]
// @Security Bearer
// @Router   /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	unreadOnly := false
	if v := c.Query("unread"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, "notification", errInvalidRequest)
			return
		}
		unreadOnly = b
	}
	items, err := h.usecase.List(c.Request.Context(), unreadOnly)
	if err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// @Summary  Create a notification
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Param    notification  body      request.NotificationRequest  true  "Notification"
// @Success  201           {object}  entities.Notification
// @Failure  400           {object}  pkg.HTTPError
// @Security Bearer
// @Router   /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var payload request.NotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "notification", bindError(err))
		return
	}
	n, err := h.usecase.Create(c.Request.Context(), payload.Title, payload.Message, payload.Link)
	if err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.JSON(http.StatusCreated, n)
}

// @Summary  Count unread notifications
// @Tags     notifications
// @Produce  json
// @Success  200  {object}  response.CountResponse
// @Security Bearer
// @Router   /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.usecase.UnreadCount(c.Request.Context())
	if err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// @Summary  Mark a notification as read
// @Tags     notifications
// @Produce  json
// @Param    id   path      string  true  "Notification ID"
// @Success  200  {object}  entities.Notification
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary  Mark every notification as read
// @Tags     notifications
// @Produce  json
// @Success  200  {object}  response.CountResponse
// @Security Bearer
// @Router   /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.usecase.MarkAllRead(c.Request.Context())
	if err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// @Summary  Delete a notification
// @Tags     notifications
// @Param    id   path  string  true  "Notification ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "notification", mapNotificationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidNotificationTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
