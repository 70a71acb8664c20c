package http

import (
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	OrderItems      []order.Item          `json:"orderItems"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal       `json:"itemsPrice"`
	TaxPrice        decimal.Decimal       `json:"taxPrice"`
	ShippingPrice   decimal.Decimal       `json:"shippingPrice"`
	TotalPrice      decimal.Decimal       `json:"totalPrice"`
}

type SetOrderStatusRequest struct {
	Status order.Status `json:"status"`
}

type SetOrderPaidRequest struct {
	IsPaid bool `json:"isPaid"`
}

// OrderResponse is the body returned after a transition. Reads return queries.OrderView.
type OrderResponse struct {
	ID              kernel.UUID           `json:"_id"`
	User            kernel.UUID           `json:"user"`
	OrderItems      []order.Item          `json:"orderItems"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal       `json:"itemsPrice"`
	TaxPrice        decimal.Decimal       `json:"taxPrice"`
	ShippingPrice   decimal.Decimal       `json:"shippingPrice"`
	TotalPrice      decimal.Decimal       `json:"totalPrice"`
	Status          order.Status          `json:"status"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	PaymentResult   *order.PaymentResult  `json:"paymentResult,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	prices := o.Prices()
	return OrderResponse{
		ID:              o.ID(),
		User:            o.Owner(),
		OrderItems:      o.Items(),
		ShippingAddress: o.ShippingAddress(),
		PaymentMethod:   o.PaymentMethod(),
		ItemsPrice:      prices.Items,
		TaxPrice:        prices.Tax,
		ShippingPrice:   prices.Shipping,
		TotalPrice:      prices.Total,
		Status:          o.Status(),
		IsPaid:          o.IsPaid(),
		PaidAt:          o.PaidAt(),
		PaymentResult:   o.PaymentResult(),
		IsDelivered:     o.IsDelivered(),
		DeliveredAt:     o.DeliveredAt(),
		CreatedAt:       o.CreatedAt(),
	}
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(actorFrom(c), kernel.NewUUID(), services.PlaceOrderRequest{
		Items:           req.OrderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Prices: order.Prices{
			Items:    req.ItemsPrice,
			Tax:      req.TaxPrice,
			Shipping: req.ShippingPrice,
			Total:    req.TotalPrice,
		},
	})
	if err != nil {
		return err
	}

	o, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(o))
}

// ListMyOrders handles GET /api/orders/mine.
func (s *Server) ListMyOrders(c echo.Context) error {
	query, err := queries.NewListMyOrdersQuery(actorFrom(c))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, views)
}

// ListAllOrders handles GET /api/orders.
func (s *Server) ListAllOrders(c echo.Context) error {
	query, err := queries.NewListAllOrdersQuery(actorFrom(c))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, views)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// PayOrder handles PUT /api/orders/:id/pay. The body is the provider's receipt.
func (s *Server) PayOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var receipt order.PaymentResult
	if err = bind(c, &receipt); err != nil {
		return err
	}

	cmd, err := commands.NewPayOrderCommand(actorFrom(c), id, receipt)
	if err != nil {
		return err
	}

	o, err := s.handlers.PayOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// DeliverOrder handles PUT /api/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeliverOrderCommand(actorFrom(c), id)
	if err != nil {
		return err
	}

	o, err := s.handlers.DeliverOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// SetOrderStatus handles PUT /api/orders/:id/status. Cancelled removes the order.
func (s *Server) SetOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SetOrderStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(actorFrom(c), id, req.Status)
	if err != nil {
		return err
	}

	outcome, err := s.handlers.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if outcome.Deleted {
		return c.JSON(http.StatusOK, MessageResponse{Message: "Order cancelled and removed"})
	}
	return c.JSON(http.StatusOK, toOrderResponse(outcome.Order))
}

// SetOrderPaid handles PUT /api/orders/:id/paid.
func (s *Server) SetOrderPaid(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SetOrderPaidRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderPaidCommand(actorFrom(c), id, req.IsPaid)
	if err != nil {
		return err
	}

	o, err := s.handlers.SetOrderPaid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// CancelOrder handles DELETE /api/orders/:id.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actorFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order removed"})
}
