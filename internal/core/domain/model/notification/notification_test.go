package notification_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestNewNotification(t *testing.T) {
	t.Run("should create an unread notification", func(t *testing.T) {
		id, user, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		n, err := notification.NewNotification(id, user, "New Order", "Order placed", notification.OrderPlaced, &orderID, createdAt)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.IsOwnedBy(user))
		assert.False(t, n.IsRead())
		assert.Equal(t, notification.OrderPlaced, n.Type())
		require.NotNil(t, n.OrderID())
		assert.True(t, n.OrderID().IsEqual(orderID))
		assert.Equal(t, createdAt, n.CreatedAt())
	})

	t.Run("should allow a missing order reference", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "Sale", "20% off", notification.Promotional, nil, createdAt)

		require.NoError(t, err)
		assert.Nil(t, n.OrderID())
	})

	t.Run("should reject missing fields and unknown types", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), kernel.UUID{}, " ", "", notification.Type("SPAM"), nil, createdAt)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "notification user")
		assert.Contains(t, err.Error(), "notification title")
		assert.Contains(t, err.Error(), "notification message")
		assert.Contains(t, err.Error(), `"SPAM" is not a valid type`)
	})
}

func TestNotification_SetRead(t *testing.T) {
	owner, _ := kernel.NewActor(kernel.NewUUID(), "Ana", "ana@example.com", false)
	admin, _ := kernel.NewActor(kernel.NewUUID(), "Root", "root@example.com", true)

	n, err := notification.NewNotification(kernel.NewUUID(), owner.ID, "Status", "Shipped", notification.OrderStatusUpdate, nil, createdAt)
	require.NoError(t, err)

	require.NoError(t, n.SetRead(owner, true))
	assert.True(t, n.IsRead())

	require.NoError(t, n.SetRead(owner, false))
	assert.False(t, n.IsRead())

	err = n.SetRead(admin, true)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, n.IsRead())
}

func TestRestoreNotification(t *testing.T) {
	n, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(), "t", "m", notification.System, true, nil, createdAt)

	require.NoError(t, err)
	assert.True(t, n.IsRead())
}

func TestType(t *testing.T) {
	assert.True(t, notification.Promotional.IsBroadcastable())
	assert.True(t, notification.System.IsBroadcastable())
	assert.False(t, notification.OrderPlaced.IsBroadcastable())
	assert.False(t, notification.SupportRequest.IsBroadcastable())
	assert.NoError(t, notification.SupportRequest.Validate())
	assert.ErrorIs(t, notification.Type("").Validate(), errs.ErrValueIsInvalid)
}

func TestEvent(t *testing.T) {
	t.Run("should build an event with a fresh id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		ev, err := notification.NewEvent(notification.ToAdmins(), "New Order", "Order placed", notification.OrderPlaced, &orderID)

		require.NoError(t, err)
		assert.NoError(t, ev.ID.Validate())
		assert.True(t, ev.Recipients.AllAdmins)
		assert.Nil(t, ev.Mail)
	})

	t.Run("should attach mail without touching the original", func(t *testing.T) {
		ev, err := notification.NewEvent(notification.ToCustomers(), "Sale", "Big sale", notification.Promotional, nil)
		require.NoError(t, err)

		withMail := ev.WithMail("", "Sale", "Big sale")

		assert.Nil(t, ev.Mail)
		require.NotNil(t, withMail.Mail)
		assert.Empty(t, withMail.Mail.To)
	})

	t.Run("should require recipients", func(t *testing.T) {
		_, err := notification.NewEvent(notification.RecipientSet{}, "t", "m", notification.System, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "event recipients")
	})

	t.Run("should accept explicit users", func(t *testing.T) {
		set := notification.ToUsers(kernel.NewUUID(), kernel.NewUUID())

		assert.False(t, set.IsEmpty())
		assert.Len(t, set.UserIDs, 2)
	})
}
