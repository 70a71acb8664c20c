package http

import (
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"

	"github.com/labstack/echo/v4"
)

type MarkReadRequest struct {
	IsRead *bool `json:"isRead"`
}

type BroadcastRequest struct {
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Type    notification.Type `json:"type"`
}

type SupportRequest struct {
	Subject string       `json:"subject"`
	Message string       `json:"message"`
	OrderID *kernel.UUID `json:"orderId,omitempty"`
}

// AcceptedResponse acknowledges an event queued for delivery.
type AcceptedResponse struct {
	Message string      `json:"message"`
	EventID kernel.UUID `json:"eventId"`
}

func (s *Server) ListMyNotifications(c echo.Context) error {
	query, err := queries.NewListMyNotificationsQuery(actorFrom(c))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListMyNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, views)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read. Without a body the
// notification is marked read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req MarkReadRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	read := req.IsRead == nil || *req.IsRead

	cmd, err := commands.NewMarkNotificationReadCommand(actorFrom(c), id, read)
	if err != nil {
		return err
	}

	n, err := s.handlers.MarkNotificationRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, queries.NotificationView{
		ID:        n.ID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type(),
		IsRead:    n.IsRead(),
		OrderID:   n.OrderID(),
		CreatedAt: n.CreatedAt(),
	})
}

func (s *Server) DeleteNotification(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteNotificationCommand(actorFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteNotification.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Notification removed"})
}

// BroadcastNotification handles POST /api/notifications/broadcast.
func (s *Server) BroadcastNotification(c echo.Context) error {
	var req BroadcastRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBroadcastNotificationCommand(actorFrom(c), req.Title, req.Message, req.Type)
	if err != nil {
		return err
	}

	ev, err := s.handlers.BroadcastNotification.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, AcceptedResponse{Message: "Broadcast queued", EventID: ev.ID})
}

// SubmitSupportRequest handles POST /api/support.
func (s *Server) SubmitSupportRequest(c echo.Context) error {
	var req SupportRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitSupportRequestCommand(actorFrom(c), req.Subject, req.Message, req.OrderID)
	if err != nil {
		return err
	}

	ev, err := s.handlers.SubmitSupportRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, AcceptedResponse{Message: "Support request received", EventID: ev.ID})
}
