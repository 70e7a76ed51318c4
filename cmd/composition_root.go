package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	apphttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/jwtauth"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	policy       services.OrderAccessPolicy
	tokenService *jwtauth.TokenService
	publisher    ports.StatusChangedPublisher
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	expiryHours, err := strconv.Atoi(config.JWTExpiresInHours)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid JWT_EXPIRES_IN_HOURS: %w", err)
	}

	tokenService, err := jwtauth.NewTokenService(
		config.JWTSecret,
		config.JWTIssuer,
		config.JWTAudience,
		time.Duration(expiryHours)*time.Hour,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create token service: %w", err)
	}

	subscribers := []ports.StatusChangedPublisher{notifications.NewLogSubscriber(logger)}
	if config.KafkaHost != "" {
		kafkaPublisher, kafkaErr := kafka.NewStatusPublisher(
			[]string{config.KafkaHost},
			config.KafkaOrderStatusTopic,
			logger,
		)
		if kafkaErr != nil {
			return CompositionRoot{}, fmt.Errorf("failed to create Kafka publisher: %w", kafkaErr)
		}
		subscribers = append(subscribers, kafkaPublisher)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:       services.NewOrderAccessPolicy(),
		tokenService: tokenService,
		publisher:    notifications.NewDispatcher(logger, subscribers...),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB, c.policy, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.policy, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *apphttp.Server {
	return apphttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.tokenService,
		c.tokenService,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
