package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isOrderPlacedEvent(ev notification.Event) bool {
	return ev.Type == notification.OrderPlaced && ev.Recipients.AllAdmins && ev.Mail != nil
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(customer, id, placeRequest())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Enqueue", ctx, mock.MatchedBy(isOrderPlacedEvent)).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, newMachine(), notifier)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(id))
	assert.Equal(t, order.Pending, o.Status())
	assert.False(t, o.IsPaid())
	assert.Equal(t, fixedNow, o.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyItems(t *testing.T) {
	req := placeRequest()
	req.Items = nil
	cmd, err := commands.NewPlaceOrderCommand(customer, kernel.NewUUID(), req)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewPlaceOrderCommandHandler(factory, newMachine(), notifier)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderUoWFactory), newMachine(), new(MockNotifier))

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestPlaceOrderCommandHandler_Handle_PersistFailureSkipsDispatch(t *testing.T) {
	tests := []struct {
		name      string
		addErr    error
		commitErr error
	}{
		{name: "add fails", addErr: errors.New("add error")},
		{name: "commit fails", commitErr: errors.New("commit error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewPlaceOrderCommand(customer, kernel.NewUUID(), placeRequest())

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(tt.addErr).Once()
			if tt.addErr == nil {
				uow.On("Commit", ctx).Return(tt.commitErr).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()
			notifier := new(MockNotifier)

			h := commands.NewPlaceOrderCommandHandler(factory, newMachine(), notifier)
			_, err := h.Handle(ctx, cmd)

			require.Error(t, err)
			uow.AssertExpectations(t)
			notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
		})
	}
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.Actor{}, kernel.UUID{}, placeRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Contains(t, err.Error(), "actor")
}
