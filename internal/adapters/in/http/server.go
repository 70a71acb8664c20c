package http

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case handlers the server depends on. The application layer's handler types
// satisfy them as they are.
type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	PayOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) (*order.Order, error)
	}
	DeliverOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverOrderCommand) (*order.Order, error)
	}
	SetOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) (services.Outcome, error)
	}
	SetOrderPaidHandler interface {
		Handle(ctx context.Context, cmd commands.SetOrderPaidCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	MarkNotificationReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) (*notification.Notification, error)
	}
	DeleteNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteNotificationCommand) error
	}
	BroadcastNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.BroadcastNotificationCommand) (notification.Event, error)
	}
	SubmitSupportRequestHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitSupportRequestCommand) (notification.Event, error)
	}
	ListMyOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderView, error)
	}
	ListAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListAllOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListMyNotificationsHandler interface {
		Handle(ctx context.Context, query queries.ListMyNotificationsQuery) ([]queries.NotificationView, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	PlaceOrder            PlaceOrderHandler
	PayOrder              PayOrderHandler
	DeliverOrder          DeliverOrderHandler
	SetOrderStatus        SetOrderStatusHandler
	SetOrderPaid          SetOrderPaidHandler
	CancelOrder           CancelOrderHandler
	MarkNotificationRead  MarkNotificationReadHandler
	DeleteNotification    DeleteNotificationHandler
	BroadcastNotification BroadcastNotificationHandler
	SubmitSupportRequest  SubmitSupportRequestHandler

	// Query handlers
	ListMyOrders        ListMyOrdersHandler
	ListAllOrders       ListAllOrdersHandler
	GetOrder            GetOrderHandler
	ListMyNotifications ListMyNotificationsHandler
}

// Server translates HTTP requests into commands and queries. It holds no business rules:
// authorization beyond authentication happens in the use cases.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates a server. Routes are registered by Register.
func NewServer(handlers Handlers, auth *Authenticator, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		auth:     auth,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError
	e.Use(s.observe)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api", s.auth.Middleware)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/mine", s.ListMyOrders)
	api.GET("/orders", s.ListAllOrders, RequireAdmin)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/pay", s.PayOrder)
	api.PUT("/orders/:id/deliver", s.DeliverOrder)
	api.PUT("/orders/:id/status", s.SetOrderStatus, RequireAdmin)
	api.PUT("/orders/:id/paid", s.SetOrderPaid, RequireAdmin)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.GET("/notifications", s.ListMyNotifications)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
	api.POST("/notifications/broadcast", s.BroadcastNotification, RequireAdmin)

	api.POST("/support", s.SubmitSupportRequest)
}
