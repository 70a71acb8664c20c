package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

var (
	customer = kernel.Actor{ID: kernel.NewUUID(), Name: "Ana", Email: "ana@example.com"}
	stranger = kernel.Actor{ID: kernel.NewUUID(), Name: "Bob", Email: "bob@example.com"}
	admin    = kernel.Actor{ID: kernel.NewUUID(), Name: "Root", Email: "root@example.com", IsAdmin: true}
)

func newMachine() services.OrderStateMachine {
	return services.NewOrderStateMachine(&kernel.FixedClock{At: fixedNow})
}

func placeRequest() services.PlaceOrderRequest {
	return services.PlaceOrderRequest{
		Items: []order.Item{
			{ProductID: "p-1", Name: "Monitor", Price: decimal.NewFromInt(1000), Quantity: 1},
			{ProductID: "p-2", Name: "Cable", Price: decimal.NewFromInt(250), Quantity: 2},
		},
		ShippingAddress: order.ShippingAddress{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		PaymentMethod:   "PayPal",
		Prices: order.Prices{
			Items: decimal.NewFromInt(1500), Tax: decimal.Zero, Shipping: decimal.Zero, Total: decimal.NewFromInt(1500),
		},
	}
}

// storedOrder builds an order owned by customer in the given status, as a repository would return it.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	req := placeRequest()
	o, err := order.NewOrder(kernel.NewUUID(), customer.ID, req.Items, req.ShippingAddress, req.PaymentMethod, req.Prices, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	_, err = o.ChangeStatus(status, fixedNow.Add(-time.Minute))
	require.NoError(t, err)
	return o
}
