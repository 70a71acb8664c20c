package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/notificationrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/pgtest"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var seededAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type QueryHandlersTestSuite struct {
	suite.Suite
	database *pgtest.Database

	orders        *orderrepo.GormOrderRepository
	notifications *notificationrepo.GormNotificationRepository

	admin    user.User
	customer user.User
	other    user.User
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.orders = orderrepo.NewGormOrderRepository(database.DB)
	suite.notifications = notificationrepo.NewGormNotificationRepository(database.DB)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.admin = user.User{ID: kernel.NewUUID(), Name: "Admin", Email: "admin@example.com", IsAdmin: true}
	suite.customer = user.User{ID: kernel.NewUUID(), Name: "Carol", Email: "carol@example.com"}
	suite.other = user.User{ID: kernel.NewUUID(), Name: "Dave", Email: "dave@example.com"}

	users := userrepo.NewGormUserRepository(suite.database.DB)
	for _, u := range []user.User{suite.admin, suite.customer, suite.other} {
		suite.Require().NoError(users.Save(suite.T().Context(), u))
	}
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueryHandlersTestSuite) TestListMyOrders_ReturnsOnlyOwnOrdersNewestFirst() {
	older := suite.addOrder(suite.customer.ID, seededAt.Add(-time.Hour))
	newer := suite.addOrder(suite.customer.ID, seededAt)
	suite.addOrder(suite.other.ID, seededAt)

	query, err := queries.NewListMyOrdersQuery(suite.customer.Actor())
	suite.Require().NoError(err)

	views, err := queries.NewListMyOrdersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.True(newer.ID().IsEqual(views[0].ID))
	suite.True(older.ID().IsEqual(views[1].ID))
	suite.Equal(order.Pending, views[0].Status)
	suite.Require().Len(views[0].Items, 1)
	suite.Equal("Mug", views[0].Items[0].Name)
	suite.True(decimal.RequireFromString("12.50").Equal(views[0].TotalPrice))
	suite.Nil(views[0].PaymentResult)
}

func (suite *QueryHandlersTestSuite) TestListMyOrders_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewListMyOrdersQuery(suite.other.Actor())
	suite.Require().NoError(err)

	views, err := queries.NewListMyOrdersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueryHandlersTestSuite) TestListAllOrders_AdminSeesOwnerIDAndName() {
	suite.addOrder(suite.customer.ID, seededAt)
	suite.addOrder(suite.other.ID, seededAt.Add(-time.Minute))

	query, err := queries.NewListAllOrdersQuery(suite.admin.Actor())
	suite.Require().NoError(err)

	views, err := queries.NewListAllOrdersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.True(suite.customer.ID.IsEqual(views[0].Owner.ID))
	suite.Equal("Carol", views[0].Owner.Name)
	suite.Empty(views[0].Owner.Email)
	suite.Equal("Dave", views[1].Owner.Name)
}

func (suite *QueryHandlersTestSuite) TestListAllOrders_CustomerIsUnauthorized() {
	query, err := queries.NewListAllOrdersQuery(suite.customer.Actor())
	suite.Require().NoError(err)

	_, err = queries.NewListAllOrdersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_AnyUserCanReadAnyOrder() {
	placed := suite.addOrder(suite.customer.ID, seededAt)
	paidAt := seededAt.Add(time.Hour)
	suite.Require().NoError(placed.Pay(order.PaymentResult{ID: "PAY-9", Status: "COMPLETED"}, paidAt))
	suite.Require().NoError(suite.orders.Update(suite.T().Context(), placed))

	query, err := queries.NewGetOrderQuery(suite.other.Actor(), placed.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.True(placed.ID().IsEqual(view.ID))
	suite.Equal("Carol", view.Owner.Name)
	suite.Equal("carol@example.com", view.Owner.Email)
	suite.True(view.IsPaid)
	suite.Require().NotNil(view.PaidAt)
	suite.True(paidAt.Equal(*view.PaidAt))
	suite.Require().NotNil(view.PaymentResult)
	suite.Equal("PAY-9", view.PaymentResult.ID)
	suite.Equal("Springfield", view.ShippingAddress.City)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Missing_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(suite.customer.Actor(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersTestSuite) TestListMyNotifications_NewestFirstAndOwnOnly() {
	ctx := suite.T().Context()
	orderID := kernel.NewUUID()
	older := suite.newNotification(suite.customer.ID, nil, seededAt.Add(-time.Hour))
	newer := suite.newNotification(suite.customer.ID, &orderID, seededAt)
	foreign := suite.newNotification(suite.other.ID, nil, seededAt)
	suite.Require().NoError(suite.notifications.AddBatch(ctx, []*notification.Notification{older, newer, foreign}))

	query, err := queries.NewListMyNotificationsQuery(suite.customer.Actor())
	suite.Require().NoError(err)

	views, err := queries.NewListMyNotificationsQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.True(newer.ID().IsEqual(views[0].ID))
	suite.Require().NotNil(views[0].OrderID)
	suite.True(orderID.IsEqual(*views[0].OrderID))
	suite.True(older.ID().IsEqual(views[1].ID))
	suite.Nil(views[1].OrderID)
	suite.Equal(notification.OrderStatusUpdate, views[1].Type)
	suite.False(views[1].IsRead)
}

func (suite *QueryHandlersTestSuite) addOrder(owner kernel.UUID, createdAt time.Time) *order.Order {
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		owner,
		[]order.Item{{ProductID: "p-1", Name: "Mug", Price: decimal.RequireFromString("10.00"), Quantity: 1}},
		order.ShippingAddress{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		"PayPal",
		order.Prices{
			Items:    decimal.RequireFromString("10.00"),
			Tax:      decimal.RequireFromString("0.50"),
			Shipping: decimal.RequireFromString("2.00"),
			Total:    decimal.RequireFromString("12.50"),
		},
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), placed))
	return placed
}

func (suite *QueryHandlersTestSuite) newNotification(
	userID kernel.UUID,
	orderID *kernel.UUID,
	createdAt time.Time,
) *notification.Notification {
	n, err := notification.NewNotification(
		kernel.NewUUID(),
		userID,
		"Order Status Updated",
		"Your order is now Shipped",
		notification.OrderStatusUpdate,
		orderID,
		createdAt,
	)
	suite.Require().NoError(err)
	return n
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
