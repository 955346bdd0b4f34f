package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/application/services"
	domain "file-manager-api/internal/domain/notification"
	"file-manager-api/internal/infrastructure/jwt"
	"file-manager-api/internal/infrastructure/ws"
	notificationDTO "file-manager-api/internal/interface/api/rest/dto/notification"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

type NotificationController struct {
	notificationService ports.NotificationService
	hub                 *ws.Hub
	logger              *zap.Logger
}

func NewNotificationController(
	r *gin.Engine,
	notificationService ports.NotificationService,
	hub *ws.Hub,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *NotificationController {
	nc := &NotificationController{
		notificationService: notificationService,
		hub:                 hub,
		logger:              logger,
	}

	authorized := r.Group("", middleware.AuthMiddleware(jwtService))
	authorized.POST(RouteNotifications, nc.SendHandler)
	authorized.GET(RouteNotificationsUnread, nc.UnreadHandler)
	authorized.POST(RouteNotificationMarkRead, nc.MarkReadHandler)
	authorized.GET(RouteNotificationsAll, nc.AllHandler)
	authorized.GET(RouteNotificationsWS, nc.SubscribeHandler)

	return nc
}

func (nc *NotificationController) SendHandler(c *gin.Context) {
	senderID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req notificationDTO.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := validator.ValidateNotification(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	n, err := nc.notificationService.Publish(
		c.Request.Context(),
		&senderID,
		req.Title,
		req.Message,
		req.UserIDs,
	)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to send notification"},
		)
		nc.logger.Error("Publish() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, notificationDTO.ToResponseNotification(n, false))
}

func (nc *NotificationController) UnreadHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ns, err := nc.notificationService.Unread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get notifications"},
		)
		nc.logger.Error("Unread() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, notificationDTO.ResponseData{
		Data: notificationDTO.ToResponseNotifications(ns, false),
	})
}

func (nc *NotificationController) MarkReadHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	validID, notificationID := validator.IsUUID(c.Param("notification_id"))
	if !validID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "notification_id must be a valid UUID"})
		return
	}

	n, err := nc.notificationService.MarkRead(c.Request.Context(), notificationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to mark notification as read"},
		)
		nc.logger.Error("MarkRead() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, notificationDTO.ToResponseNotification(n, true))
}

func (nc *NotificationController) AllHandler(c *gin.Context) {
	if c.GetString(middleware.CtxUserRole) != roleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}

	ns, err := nc.notificationService.All(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get notifications"},
		)
		nc.logger.Error("All() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": notificationDTO.ToResponseWithRecipients(ns),
	})
}

// SubscribeHandler upgrades the request and parks it on the hub until the
// client disconnects.
func (nc *NotificationController) SubscribeHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := nc.hub.Subscribe(c.Writer, c.Request, userID, services.ChannelNotifications); err != nil {
		nc.logger.Info("websocket session ended", zap.Error(err), zap.Stringer("user_uuid", userID))
	}
}
