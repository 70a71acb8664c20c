package cmd

import (
	"errors"
	"log/slog"
	"time"

	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/email"
	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/adapters/out/push"
	"shop/internal/adapters/out/redis"
	"shop/internal/core/application/dispatch"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
	"shop/internal/jobs"
	"shop/internal/pkg/metrics"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const pushTimeout = 10 * time.Second

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	machine    services.OrderStateMachine
	metrics    *metrics.Metrics
	logger     *slog.Logger
	directory  ports.UserDirectory
	dispatcher *dispatch.Dispatcher
	closers    []func() error
}

// NewCompositionRoot wires the adapters. Email, the event stream and the recipient cache
// are only enabled when configured.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.SystemClock{},
		metrics:    metrics.New(),
		logger:     logger,
	}
	c.machine = services.NewOrderStateMachine(c.clock)
	c.directory = c.createDirectory()

	channels, err := c.createChannels()
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	var f dispatch.NotificationUoWFactory = FuncDispatchUoWFactory(func() dispatch.NotificationUoW {
		return c.uowFactory.Create()
	})
	c.dispatcher, err = dispatch.NewDispatcher(dispatch.Config{
		Workers:     cfg.DispatchWorkers,
		QueueSize:   cfg.DispatchQueueSize,
		AdminEmail:  cfg.AdminEmail,
		StreamTopic: cfg.KafkaNotificationsTopic,
	}, f, c.directory, channels, c.clock, c.metrics, logger)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) createDirectory() ports.UserDirectory {
	store := userrepo.NewGormUserRepository(c.gormDB)
	if c.cfg.RedisAddr == "" {
		return store
	}

	client := goredis.NewClient(&goredis.Options{Addr: c.cfg.RedisAddr})
	c.closers = append(c.closers, client.Close)
	c.logger.Info("recipient cache enabled", "addr", c.cfg.RedisAddr, "ttl", c.cfg.RecipientCacheTTL)

	return redis.NewCachedDirectory(store, redis.NewRedisCache(client, "shop"), c.cfg.RecipientCacheTTL, c.logger)
}

func (c *CompositionRoot) createChannels() (dispatch.Channels, error) {
	channels := dispatch.Channels{
		Push: push.NewExpoSender(c.cfg.PushAPIURL, pushTimeout),
	}

	if c.cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUser, c.cfg.SMTPPassword, c.cfg.SMTPFrom)
		if err != nil {
			return dispatch.Channels{}, err
		}
		channels.Email = sender
	}

	publisher, err := kafka.NewPublisher(c.cfg.KafkaBrokers)
	switch {
	case errors.Is(err, kafka.ErrDisabled):
	case err != nil:
		return dispatch.Channels{}, err
	default:
		c.closers = append(c.closers, publisher.Close)
		channels.Stream = publisher
		c.logger.Info("event stream enabled", "brokers", c.cfg.KafkaBrokers, "topic", c.cfg.KafkaNotificationsTopic)
	}

	return channels, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreateSetOrderPaidCommandHandler() commands.SetOrderPaidCommandHandler {
	return commands.NewSetOrderPaidCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.machine, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateBroadcastNotificationCommandHandler() commands.BroadcastNotificationCommandHandler {
	return commands.NewBroadcastNotificationCommandHandler(c.dispatcher)
}

func (c *CompositionRoot) CreateSubmitSupportRequestCommandHandler() commands.SubmitSupportRequestCommandHandler {
	return commands.NewSubmitSupportRequestCommandHandler(c.dispatcher)
}

func (c *CompositionRoot) CreatePurgeExpiredRecordsCommandHandler() commands.PurgeExpiredRecordsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredRecordsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyNotificationsQueryHandler() queries.ListMyNotificationsQueryHandler {
	return queries.NewListMyNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() (*shophttp.Server, error) {
	auth, err := shophttp.NewAuthenticator(c.cfg.JWTSecret, c.directory)
	if err != nil {
		return nil, err
	}

	return shophttp.NewServer(shophttp.Handlers{
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		PayOrder:              c.CreatePayOrderCommandHandler(),
		DeliverOrder:          c.CreateDeliverOrderCommandHandler(),
		SetOrderStatus:        c.CreateSetOrderStatusCommandHandler(),
		SetOrderPaid:          c.CreateSetOrderPaidCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		MarkNotificationRead:  c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotification:    c.CreateDeleteNotificationCommandHandler(),
		BroadcastNotification: c.CreateBroadcastNotificationCommandHandler(),
		SubmitSupportRequest:  c.CreateSubmitSupportRequestCommandHandler(),
		ListMyOrders:          c.CreateListMyOrdersQueryHandler(),
		ListAllOrders:         c.CreateListAllOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListMyNotifications:   c.CreateListMyNotificationsQueryHandler(),
	}, auth, c.metrics, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewPurgeExpiredRecordsCommand(c.cfg.OrderRetention, c.cfg.NotificationRetention)
	if err != nil {
		return nil, err
	}

	retentionJob, err := jobs.NewRetentionJob(
		c.CreatePurgeExpiredRecordsCommandHandler(), cmd, c.cfg.RetentionSchedule, c.metrics, c.logger,
	)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.dispatcher, retentionJob), nil
}

// Close releases the optional transport clients.
func (c *CompositionRoot) Close() error {
	var result []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		result = append(result, c.closers[i]())
	}
	return errors.Join(result...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDispatchUoWFactory func() dispatch.NotificationUoW

func (f FuncDispatchUoWFactory) Create() dispatch.NotificationUoW {
	return f()
}
