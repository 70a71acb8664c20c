package dispatch_test

import (
	"context"
	"time"

	"shop/internal/core/application/dispatch"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) AddBatch(ctx context.Context, batch []*notification.Notification) error {
	return m.Called(ctx, batch).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUoW always succeeds and hands out the shared repository mock.
type fakeUoW struct {
	repo *MockNotificationRepository
}

func (u fakeUoW) Begin(context.Context) error                          { return nil }
func (u fakeUoW) Commit(context.Context) error                         { return nil }
func (u fakeUoW) Rollback(context.Context) error                       { return nil }
func (u fakeUoW) NotificationRepository() ports.NotificationRepository { return u.repo }

type fakeUoWFactory struct {
	repo *MockNotificationRepository
}

func (f fakeUoWFactory) Create() dispatch.NotificationUoW {
	return fakeUoW{repo: f.repo}
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserDirectory) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *MockUserDirectory) ListAdmins(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *MockUserDirectory) ListCustomers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) ValidToken(token string) bool {
	return user.IsValidPushToken(token)
}

func (m *MockPushSender) SendBatch(ctx context.Context, messages []ports.PushMessage) ([]ports.PushTicket, error) {
	args := m.Called(ctx, messages)
	tickets, _ := args.Get(0).([]ports.PushTicket)
	return tickets, args.Error(1)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	return m.Called(ctx, topic, key, event).Error(0)
}
