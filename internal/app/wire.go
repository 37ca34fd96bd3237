//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	notificationGateway "pako/internal/gateway/http/notification"
	paymentGateway "pako/internal/gateway/http/payment"
	order_delete "pako/internal/handlers/rest/order_delete"
	order_get "pako/internal/handlers/rest/order_get"
	order_post "pako/internal/handlers/rest/order_post"
	order_status_put "pako/internal/handlers/rest/order_status_put"
	orders_get "pako/internal/handlers/rest/orders_get"
	package_assign_post "pako/internal/handlers/rest/package_assign_post"
	worker_missions_get "pako/internal/handlers/rest/worker_missions_get"
	"pako/internal/handlers/tasks/mission_reconcile"
	"pako/internal/pkg/config"
	"pako/internal/pkg/geo"

	assignmentRepo "pako/internal/repository/assignment"
	orderRepo "pako/internal/repository/order"
	workerRepo "pako/internal/repository/worker"
	assignmentService "pako/internal/service/assignment"
	identifierService "pako/internal/service/identifier"
	orderService "pako/internal/service/order"
	pricingService "pako/internal/service/pricing"

	"pako/pkg/background"
	"pako/pkg/logger"
	"pako/pkg/querier"
	"pako/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

const identifierRetryDelay = time.Second

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_delete.Service
}

type ServiceAssignment interface {
	package_assign_post.Service
	worker_missions_get.Service
}

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,
		provideAssignmentRepository,
		provideWorkerRepository,

		providePricingEngine,
		provideDistanceCalculator,
		provideIdentifierGenerator,
		provideNotificationGateway,
		providePaymentGateway,

		provideServiceAssignment,
		provideServiceOrder,

		provideMissionReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Lifecycle)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Coordinator)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Pricer), new(*pricingService.Engine)),
		wire.Bind(new(orderService.DistanceCalculator), new(*geo.Calculator)),
		wire.Bind(new(orderService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(orderService.MissionSyncer), new(*assignmentService.Coordinator)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.SMSGateway)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.MoneyGateway)),

		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.WorkerDirectory), new(*workerRepo.Repository)),
		wire.Bind(new(assignmentService.IdentifierGenerator), new(*identifierService.Generator)),

		wire.Bind(new(identifierService.Repository), new(*assignmentRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(mission_reconcile.Service), new(*assignmentService.Coordinator)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Lifecycle
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideAssignmentRepository,
		provideWorkerRepository,

		providePricingEngine,
		provideDistanceCalculator,
		provideIdentifierGenerator,
		provideNotificationGateway,
		providePaymentGateway,

		provideServiceAssignment,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Pricer), new(*pricingService.Engine)),
		wire.Bind(new(orderService.DistanceCalculator), new(*geo.Calculator)),
		wire.Bind(new(orderService.IdentifierGenerator), new(*identifierService.Generator)),
		wire.Bind(new(orderService.MissionSyncer), new(*assignmentService.Coordinator)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.SMSGateway)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.MoneyGateway)),

		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.WorkerDirectory), new(*workerRepo.Repository)),
		wire.Bind(new(assignmentService.IdentifierGenerator), new(*identifierService.Generator)),

		wire.Bind(new(identifierService.Repository), new(*assignmentRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideWorkerRepository(querier *querier.Querier) *workerRepo.Repository {
	return workerRepo.New(querier)
}

func providePricingEngine() *pricingService.Engine {
	return pricingService.New()
}

func provideDistanceCalculator() *geo.Calculator {
	return geo.NewCalculator()
}

func provideIdentifierGenerator(repository identifierService.Repository) *identifierService.Generator {
	return identifierService.New(repository, identifierRetryDelay)
}

func provideNotificationGateway(httpClient *http.Client, cfg *config.Config) *notificationGateway.SMSGateway {
	return notificationGateway.New(httpClient, cfg.Gateways.NotificationBaseURL)
}

func providePaymentGateway(httpClient *http.Client, cfg *config.Config) *paymentGateway.MoneyGateway {
	return paymentGateway.New(httpClient, cfg.Gateways.PaymentBaseURL)
}

func provideServiceAssignment(
	log logger.Logger,
	repository assignmentService.Repository,
	workers assignmentService.WorkerDirectory,
	identifier assignmentService.IdentifierGenerator,
	txManager assignmentService.TxManager,
) *assignmentService.Coordinator {
	return assignmentService.New(log, repository, workers, identifier, txManager)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	pricer orderService.Pricer,
	distance orderService.DistanceCalculator,
	identifier orderService.IdentifierGenerator,
	missions orderService.MissionSyncer,
	notifier orderService.Notifier,
	payments orderService.PaymentGateway,
	txManager orderService.TxManager,
) *orderService.Lifecycle {
	return orderService.New(log, repository, pricer, distance, identifier, missions, notifier, payments, txManager)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.MissionReconcileInterval)
}

func provideMissionReconcileTask(
	log logger.Logger,
	assignmentService mission_reconcile.Service,
	interval ReconcileInterval,
) *mission_reconcile.MissionReconcile {
	return mission_reconcile.NewMissionReconcile(log, assignmentService, time.Duration(interval))
}

func provideTaskList(
	missionReconcileTask *mission_reconcile.MissionReconcile,
) []background.Task {
	return []background.Task{
		missionReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
