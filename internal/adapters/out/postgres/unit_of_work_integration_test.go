package postgres_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	pgadapter "printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/workerrepo"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ledgerUoWFactory adapts the postgres factory to the command layer.
type ledgerUoWFactory struct {
	inner *pgadapter.GormUnitOfWorkFactory
}

func (f ledgerUoWFactory) Create() commands.LedgerUoW { return f.inner.Create() }

type orderUoWFactory struct {
	inner *pgadapter.GormUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW { return f.inner.Create() }

// UnitOfWorkIntegrationTestSuite runs the transactional execution scenarios
// end to end against PostgreSQL: equipment arbitration under concurrency,
// conditional completion, status recomputation, and the order gate.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory

	startHandler    commands.StartProcessCommandHandler
	completeHandler commands.CompleteProcessCommandHandler
	gateHandler     commands.CompleteOrderCommandHandler

	workerID      kernel.UUID
	otherWorkerID kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(pgadapter.Migrate(db))

	suite.factory = pgadapter.NewGormUnitOfWorkFactory(db)
	suite.startHandler = commands.NewStartProcessCommandHandler(ledgerUoWFactory{suite.factory})
	suite.completeHandler = commands.NewCompleteProcessCommandHandler(ledgerUoWFactory{suite.factory})
	suite.gateHandler = commands.NewCompleteOrderCommandHandler(orderUoWFactory{suite.factory})
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, workers CASCADE").Error)

	workerRepo := workerrepo.NewGormWorkerRepository(suite.db)

	first, err := worker.NewWorker(kernel.NewUUID(), "jsmith", "Jane Smith",
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		worker.RoleEmployee, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(workerRepo.Add(ctx, first))
	suite.workerID = first.ID()

	second, err := worker.NewWorker(kernel.NewUUID(), "bcarter", "Bob Carter",
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		worker.RoleEmployee, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(workerRepo.Add(ctx, second))
	suite.otherWorkerID = second.ID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(orderNumber string, names ...order.ProcessName) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), orderNumber, "", "", names, time.Now().UTC())
	suite.Require().NoError(err)
	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) processStatus(processID kernel.UUID) order.ProcessStatus {
	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	process, err := repo.GetProcess(context.Background(), processID)
	suite.Require().NoError(err)
	return process.Status()
}

func (suite *UnitOfWorkIntegrationTestSuite) start(
	processID, workerID kernel.UUID,
	equipment string,
	vars execution.Variables,
) (kernel.UUID, error) {
	cmd, err := commands.NewStartProcessCommand(processID, workerID, equipment, vars)
	suite.Require().NoError(err)
	return suite.startHandler.Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) complete(
	processID kernel.UUID,
	executionID *kernel.UUID,
	workerID kernel.UUID,
	vars execution.Variables,
) error {
	cmd, err := commands.NewCompleteProcessCommand(processID, executionID, workerID, vars)
	suite.Require().NoError(err)
	return suite.completeHandler.Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStartComplete_TwoWorkersOneProcess() {
	aggregate := suite.createOrder("1825", order.Printing)
	processID := aggregate.Processes()[0].ID()

	_, err := suite.start(processID, suite.workerID, "", execution.Variables{"material": "vinyl"})
	suite.Require().NoError(err)
	_, err = suite.start(processID, suite.otherWorkerID, "", nil)
	suite.Require().NoError(err)

	suite.Equal(order.ProcessStatusInProgress, suite.processStatus(processID))

	suite.Require().NoError(suite.complete(processID, nil, suite.workerID, execution.Variables{"defect_count": "2"}))
	suite.Equal(order.ProcessStatusInProgress, suite.processStatus(processID))

	suite.Require().NoError(suite.complete(processID, nil, suite.otherWorkerID, nil))
	suite.Equal(order.ProcessStatusCompleted, suite.processStatus(processID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStart_OnCompletedProcess_Rejected() {
	aggregate := suite.createOrder("1825", order.Printing)
	processID := aggregate.Processes()[0].ID()

	_, err := suite.start(processID, suite.workerID, "", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.complete(processID, nil, suite.workerID, nil))

	_, err = suite.start(processID, suite.otherWorkerID, "", nil)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEquipment_HeldAcrossOrders() {
	first := suite.createOrder("1825", order.DieCutting)
	second := suite.createOrder("1826", order.DieCutting)

	_, err := suite.start(first.Processes()[0].ID(), suite.workerID, order.Press1, nil)
	suite.Require().NoError(err)

	_, err = suite.start(second.Processes()[0].ID(), suite.otherWorkerID, order.Press1, nil)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrEquipmentConflict)
	suite.Contains(err.Error(), "Press-1")
	suite.Contains(err.Error(), "1825")
	suite.Contains(err.Error(), "Jane Smith")

	// The other press is a distinct resource.
	_, err = suite.start(second.Processes()[0].ID(), suite.otherWorkerID, order.Press2, nil)
	suite.Require().NoError(err)

	// Press-1 frees up when its holder completes.
	suite.Require().NoError(suite.complete(first.Processes()[0].ID(), nil, suite.workerID, nil))
	third := suite.createOrder("1827", order.DieCutting)
	_, err = suite.start(third.Processes()[0].ID(), suite.workerID, order.Press1, nil)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEquipment_ConcurrentClaims_ExactlyOneWins() {
	first := suite.createOrder("1825", order.DieCutting)
	second := suite.createOrder("1826", order.DieCutting)
	processIDs := []kernel.UUID{first.Processes()[0].ID(), second.Processes()[0].ID()}
	workerIDs := []kernel.UUID{suite.workerID, suite.otherWorkerID}

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = suite.start(processIDs[i], workerIDs[i], order.Press1, nil)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	conflicted := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.ErrorIs(err, errs.ErrEquipmentConflict)
			conflicted++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, conflicted)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestComplete_ConcurrentAttempts_ExactlyOneWins() {
	aggregate := suite.createOrder("1825", order.Printing)
	processID := aggregate.Processes()[0].ID()

	execID, err := suite.start(processID, suite.workerID, "", nil)
	suite.Require().NoError(err)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = suite.complete(processID, &execID, suite.workerID, nil)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	lost := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.ErrorIs(err, errs.ErrObjectNotFound)
			lost++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, lost)
	suite.Equal(order.ProcessStatusCompleted, suite.processStatus(processID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderGate_RejectsThenPasses() {
	ctx := context.Background()
	aggregate := suite.createOrder("1825", order.Printing, order.Packaging)

	gateCmd, err := commands.NewCompleteOrderCommand(aggregate.ID())
	suite.Require().NoError(err)

	err = suite.gateHandler.Handle(ctx, gateCmd)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)

	for _, process := range aggregate.Processes() {
		_, startErr := suite.start(process.ID(), suite.workerID, "", nil)
		suite.Require().NoError(startErr)
		suite.Require().NoError(suite.complete(process.ID(), nil, suite.workerID, nil))
	}

	suite.Require().NoError(suite.gateHandler.Handle(ctx, gateCmd))

	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	restored, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCompleted, restored.Status())
	suite.Require().NotNil(restored.CompletedAt())

	// The gate does not fire twice.
	err = suite.gateHandler.Handle(ctx, gateCmd)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoTrace() {
	ctx := context.Background()
	aggregate := suite.createOrder("1825", order.Printing)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	process, err := uow.OrderRepository().GetProcessForUpdate(ctx, aggregate.Processes()[0].ID())
	suite.Require().NoError(err)
	suite.Require().NoError(process.Start())
	suite.Require().NoError(uow.OrderRepository().UpdateProcessStatus(ctx, process))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(order.ProcessStatusPending, suite.processStatus(aggregate.Processes()[0].ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
