package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAssignmentMetricsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAssignmentMetricsQueryHandler
	seq       int
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAssignmentMetricsQueryHandler(db)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_EmptyLedger_ReturnsZeroes() {
	query := queries.NewGetAssignmentMetricsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.TotalAssigned)
	suite.Zero(result.SuccessRate)
	suite.Zero(result.AverageTimeMs)
	suite.Empty(result.FailureReasons)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_MixedLedger_AggregatesCounts() {
	createdAt := time.Now().UTC().Add(-time.Hour)

	suite.seedSuccess(createdAt, 2*time.Second)
	suite.seedSuccess(createdAt, 4*time.Second)
	suite.seedFailure(assignment.ReasonNoAvailablePartner)
	suite.seedFailure(assignment.ReasonNoAvailablePartner)

	query := queries.NewGetAssignmentMetricsQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(4, result.TotalAssigned)
	suite.InDelta(50.0, result.SuccessRate, 1e-9)

	suite.Require().Len(result.FailureReasons, 1)
	suite.Equal(assignment.ReasonNoAvailablePartner, result.FailureReasons[0].Reason)
	suite.Equal(2, result.FailureReasons[0].Count)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_AverageTime_MeasuresCreationToAssignment() {
	createdAt := time.Now().UTC().Add(-time.Hour)

	suite.seedSuccess(createdAt, 2*time.Second)
	suite.seedSuccess(createdAt, 4*time.Second)

	query := queries.NewGetAssignmentMetricsQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(3000.0, result.AverageTimeMs, 1.0)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_OnlyFailures_ZeroSuccessRate() {
	suite.seedFailure(assignment.ReasonNoAvailablePartner)

	query := queries.NewGetAssignmentMetricsQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(1, result.TotalAssigned)
	suite.Zero(result.SuccessRate)
	suite.Zero(result.AverageTimeMs)
	suite.Require().Len(result.FailureReasons, 1)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAssignmentMetricsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAssignmentMetricsQuery constructor")
}

// seedSuccess inserts an order with a fixed creation time and a successful
// ledger entry recorded after the given delay.
func (suite *GetAssignmentMetricsQueryHandlerTestSuite) seedSuccess(createdAt time.Time, delay time.Duration) {
	orderID := suite.seedOrder(createdAt)
	partnerID := uuid.New()

	entry := assignmentrepo.AssignmentDTO{
		ID:        uuid.New(),
		OrderID:   orderID,
		PartnerID: &partnerID,
		Status:    int(assignment.Success),
		Timestamp: createdAt.Add(delay),
	}
	suite.Require().NoError(suite.db.Create(&entry).Error)
}

// seedFailure inserts a failed ledger entry for a fresh order.
func (suite *GetAssignmentMetricsQueryHandlerTestSuite) seedFailure(reason string) {
	orderID := suite.seedOrder(time.Now().UTC())

	entry := assignmentrepo.AssignmentDTO{
		ID:        uuid.New(),
		OrderID:   orderID,
		Status:    int(assignment.Failed),
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&entry).Error)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) seedOrder(createdAt time.Time) uuid.UUID {
	suite.seq++

	dto := orderrepo.OrderDTO{
		ID:          uuid.New(),
		OrderNumber: fmt.Sprintf("ORD-MET-%04d", suite.seq),
		Customer: orderrepo.CustomerDTO{
			Name:    "Asha Rao",
			Phone:   "+91-9820011223",
			Address: "12 Hill Road, Bandra West",
		},
		Area:         "Bandra",
		ScheduledFor: createdAt.Add(time.Hour),
		TotalAmount:  360,
		Status:       int(order.Pending),
		CreatedAt:    createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func TestGetAssignmentMetricsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAssignmentMetricsQueryHandlerTestSuite))
}
