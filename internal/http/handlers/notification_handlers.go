package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/domain"
	"github.com/prajalbasnet/Authority-Accesss/internal/infrastructure/notifications"
)

// NotificationHandlers serves the stored notification feed and the live
// websocket stream.
type NotificationHandlers struct {
	notificationSvc domain.NotificationService
	hub             *notifications.Hub
	upgrader        websocket.Upgrader
	logger          *zap.Logger
}

// NewNotificationHandlers creates new notification handlers.
func NewNotificationHandlers(notificationSvc domain.NotificationService, hub *notifications.Hub, logger *zap.Logger) *NotificationHandlers {
	return &NotificationHandlers{
		notificationSvc: notificationSvc,
		hub:             hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// MarkSeenRequest carries the notification IDs to mark seen.
type MarkSeenRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// List handles GET /api/notifications with optional limit/offset query.
func (h *NotificationHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	items, err := h.notificationSvc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list notifications.")
		return
	}

	respondOK(c, "Notifications loaded.", items)
}

// MarkSeen handles POST /api/notifications/seen.
func (h *NotificationHandlers) MarkSeen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	var req MarkSeenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.notificationSvc.MarkSeen(c.Request.Context(), req.IDs, userID); err != nil {
		respondError(c, err, "Failed to mark notifications seen.")
		return
	}

	respondOK(c, "Notifications marked seen.", nil)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandlers) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	count, err := h.notificationSvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to count notifications.")
		return
	}

	respondOK(c, "Unread count loaded.", gin.H{"count": count})
}

// Stream handles GET /ws/notifications: upgrades the connection and parks it
// in the hub until the client goes away.
func (h *NotificationHandlers) Stream(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	h.hub.Add(userID, conn)
	// Remove closes the connection.
	defer h.hub.Remove(userID, conn)

	// Clients never send application data; the read loop only notices closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
