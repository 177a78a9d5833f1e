package cmd

import (
	"time"

	httpin "kirim/internal/adapters/in/http"
	"kirim/internal/adapters/out/geo"
	"kirim/internal/adapters/out/notify"
	"kirim/internal/adapters/out/postgres"
	"kirim/internal/adapters/out/postgres/webhookrepo"
	"kirim/internal/adapters/out/redisstore"
	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/domain/services"
	"kirim/internal/core/ports"
	"kirim/internal/jobs"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependency
// construction lives here so the rest of the code stays declarative.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	counterStore *redisstore.CounterStore
	retryQueue   *redisstore.RetryQueue
	failureStore *webhookrepo.GormWebhookFailureStore

	quoteCalculator services.QuoteCalculator
	notifier        ports.TrackingNotifier

	logger zerolog.Logger
}

// NewCompositionRoot creates the composition root over the opened
// infrastructure clients.
func NewCompositionRoot(
	config Config, gormDB *gorm.DB, redisClient *redis.Client, logger zerolog.Logger,
) CompositionRoot {
	var distance services.DistanceCalculator = geo.NewHaversineCalculator()
	if config.RoutingBaseURL != "" {
		distance = geo.NewRoutingClient(
			config.RoutingBaseURL,
			time.Duration(config.RoutingTimeoutSec)*time.Second,
			logger,
		)
	}

	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		counterStore:    redisstore.NewCounterStore(redisClient),
		retryQueue:      redisstore.NewRetryQueue(redisClient),
		failureStore:    webhookrepo.NewGormWebhookFailureStore(gormDB),
		quoteCalculator: services.NewQuoteCalculator(distance),
		notifier:        notify.NewLogTrackingNotifier(logger),
		logger:          logger,
	}
}

func (c *CompositionRoot) merchantProfile() commands.MerchantProfile {
	return commands.MerchantProfile{
		Name:            c.config.MerchantName,
		City:            c.config.MerchantCity,
		CurrencyNumeric: c.config.MerchantCurrency,
	}
}

func (c *CompositionRoot) billingPlan() commands.BillingPlan {
	return commands.BillingPlan{
		PerSeatRate: c.config.BillingPerSeatRate,
		Currency:    c.config.BillingCurrency,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tenantUoWFactory() commands.TenantUoWFactory {
	return FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCalculateQuoteCommandHandler() commands.CalculateQuoteCommandHandler {
	return commands.NewCalculateQuoteCommandHandler(c.orderUoWFactory(), c.quoteCalculator)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.quoteCalculator, c.notifier)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderStopCommandHandler() commands.CompleteOrderStopCommandHandler {
	return commands.NewCompleteOrderStopCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitReportCommandHandler() commands.SubmitReportCommandHandler {
	return commands.NewSubmitReportCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateInviteDriverCommandHandler() commands.InviteDriverCommandHandler {
	return commands.NewInviteDriverCommandHandler(c.tenantUoWFactory())
}

func (c *CompositionRoot) CreateAcceptInviteCommandHandler() commands.AcceptInviteCommandHandler {
	return commands.NewAcceptInviteCommandHandler(c.tenantUoWFactory())
}

func (c *CompositionRoot) CreateResendInviteCommandHandler() commands.ResendInviteCommandHandler {
	return commands.NewResendInviteCommandHandler(c.tenantUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	return commands.NewRemoveDriverCommandHandler(c.tenantUoWFactory())
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.billingUoWFactory(), c.merchantProfile())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateGenerateMonthlyInvoicesCommandHandler() commands.GenerateMonthlyInvoicesCommandHandler {
	return commands.NewGenerateMonthlyInvoicesCommandHandler(
		c.billingUoWFactory(), c.merchantProfile(), c.billingPlan())
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	return commands.NewMarkOverdueInvoicesCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateProcessPaymentNotificationCommandHandler() commands.ProcessPaymentNotificationCommandHandler {
	return commands.NewProcessPaymentNotificationCommandHandler(
		c.billingUoWFactory(),
		c.CreateConfirmPaymentCommandHandler(),
		c.retryQueue,
		c.failureStore,
		c.config.GatewayServerKey,
	)
}

func (c *CompositionRoot) CreateGetOrderByTrackingIDQueryHandler() queries.GetOrderByTrackingIDQueryHandler {
	return queries.NewGetOrderByTrackingIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTenantInvoicesQueryHandler() queries.ListTenantInvoicesQueryHandler {
	return queries.NewListTenantInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateVerifyInviteQueryHandler() queries.VerifyInviteQueryHandler {
	return queries.NewVerifyInviteQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled billing and reconciliation jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGenerateMonthlyInvoicesCommandHandler(),
		c.CreateMarkOverdueInvoicesCommandHandler(),
		c.CreateProcessPaymentNotificationCommandHandler(),
		c.retryQueue,
		c.logger,
	)
}

// CreateHTTPServer wires the REST API server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCalculateQuoteCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCompleteOrderStopCommandHandler(),
		c.CreateSubmitReportCommandHandler(),
		c.CreateInviteDriverCommandHandler(),
		c.CreateAcceptInviteCommandHandler(),
		c.CreateResendInviteCommandHandler(),
		c.CreateRemoveDriverCommandHandler(),
		c.CreateCreateInvoiceCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateProcessPaymentNotificationCommandHandler(),
		c.CreateGetOrderByTrackingIDQueryHandler(),
		c.CreateListTenantInvoicesQueryHandler(),
		c.CreateVerifyInviteQueryHandler(),
		httpin.NewAuthenticator([]byte(c.config.JWTSecret)),
		c.counterStore,
		httpin.RateLimitConfig{
			Requests: c.config.RateLimitRequests,
			Window:   c.config.RateLimitWindowSec,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}
