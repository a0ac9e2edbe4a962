package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/catalog"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/sesmail"
	"storefront/internal/adapters/out/smtpmail"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/core/services"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	catalog    ports.ProductCatalog
}

func NewCompositionRoot(
	ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger,
) (CompositionRoot, error) {
	channel, err := createNotificationChannel(ctx, config)
	if err != nil {
		return CompositionRoot{}, err
	}

	messages, err := services.NewMessageFactory()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("building message factory: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		dispatcher: services.NewDispatcher(channel, logger),
		messages:   messages,
		catalog:    catalog.NewStaticCatalog(),
	}, nil
}

func createNotificationChannel(ctx context.Context, config Config) (ports.NotificationChannel, error) {
	switch config.MailChannel {
	case "", "smtp":
		return smtpmail.NewChannel(
			config.SMTPHost, config.SMTPPort, config.MailFrom,
			config.SMTPUsername, config.SMTPPassword), nil
	case "ses":
		return sesmail.NewChannel(ctx, sesmail.Config{
			AccessKey: config.AWSAccessKey,
			SecretKey: config.AWSSecretKey,
			Region:    config.AWSRegion,
			From:      config.MailFrom,
		})
	default:
		return nil, fmt.Errorf("unknown mail channel %q", config.MailChannel)
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher, c.messages, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.dispatcher, c.messages, c.logger)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePaymentStatusCommandHandler(f, c.dispatcher, c.messages, c.logger)
}

func (c *CompositionRoot) CreateCreateSubscriberCommandHandler() commands.CreateSubscriberCommandHandler {
	return commands.NewCreateSubscriberCommandHandler(c.subscriberUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSubscriberCommandHandler() commands.UpdateSubscriberCommandHandler {
	return commands.NewUpdateSubscriberCommandHandler(c.subscriberUoWFactory())
}

func (c *CompositionRoot) CreateRemoveSubscriberCommandHandler() commands.RemoveSubscriberCommandHandler {
	return commands.NewRemoveSubscriberCommandHandler(c.subscriberUoWFactory())
}

func (c *CompositionRoot) CreateSendPromotionCommandHandler() commands.SendPromotionCommandHandler {
	return commands.NewSendPromotionCommandHandler(
		c.subscriberUoWFactory(), c.catalog, c.dispatcher, c.messages, c.logger)
}

func (c *CompositionRoot) CreateSendDailyPromotionCommandHandler() commands.SendDailyPromotionCommandHandler {
	return commands.NewSendDailyPromotionCommandHandler(
		c.subscriberUoWFactory(), c.catalog, c.dispatcher, c.messages, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllSubscribersQueryHandler() queries.GetAllSubscribersQueryHandler {
	return queries.NewGetAllSubscribersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateChangePaymentStatusCommandHandler(),
		c.CreateCreateSubscriberCommandHandler(),
		c.CreateUpdateSubscriberCommandHandler(),
		c.CreateRemoveSubscriberCommandHandler(),
		c.CreateSendPromotionCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetAllSubscribersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSendDailyPromotionCommandHandler(),
		c.config.PromotionSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) subscriberUoWFactory() commands.SubscriberUoWFactory {
	return FuncSubscriberUoWFactory(func() commands.SubscriberUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSubscriberUoWFactory func() commands.SubscriberUoW

func (f FuncSubscriberUoWFactory) Create() commands.SubscriberUoW {
	return f()
}
