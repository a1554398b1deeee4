package partnerrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// PartnerRepositoryIntegrationTestSuite provides integration tests for PartnerRepository
// using PostgreSQL containers to verify database persistence behavior.
type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
	seq        int
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partnerrepo.PartnerDTO{}, &partnerrepo.AreaDTO{}))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE partners, partner_areas").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ValidPartner_PersistsWithAreas() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra", "Andheri")
	suite.tracker.On("TrackAggregate", testPartner.ID(), testPartner).Once()

	err := suite.repository.Add(ctx, testPartner)
	suite.Require().NoError(err)

	suite.assertPartnerCount(1)

	var areaCount int64
	suite.Require().NoError(suite.db.Model(&partnerrepo.AreaDTO{}).Count(&areaCount).Error)
	suite.Equal(int64(2), areaCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_ExistingPartner_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestPartner("Ravi Kumar", "Bandra", "Andheri")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Ravi Kumar", retrieved.Name())
	suite.Equal(original.Email(), retrieved.Email())
	suite.Equal(original.Phone(), retrieved.Phone())
	suite.Equal(partner.Active, retrieved.Status())
	suite.Equal(0, retrieved.CurrentLoad())
	suite.ElementsMatch([]string{"Bandra", "Andheri"}, retrieved.Areas())
	suite.Equal("09:00", retrieved.Shift().Start())
	suite.Equal("18:00", retrieved.Shift().End())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NonExistentPartner_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_ReplacesProfileAndAreas() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra")
	suite.tracker.On("TrackAggregate", testPartner.ID(), testPartner).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	suite.Require().NoError(testPartner.UpdateProfile("Ravi K", testPartner.Email(), "+91-9000000001"))
	suite.Require().NoError(testPartner.UpdateAreas([]string{"Dadar", "Colaba"}))
	testPartner.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, testPartner))

	retrieved, err := suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal("Ravi K", retrieved.Name())
	suite.Equal("+91-9000000001", retrieved.Phone())
	suite.Equal(partner.Inactive, retrieved.Status())
	suite.ElementsMatch([]string{"Dadar", "Colaba"}, retrieved.Areas())

	var areaCount int64
	suite.Require().NoError(suite.db.Model(&partnerrepo.AreaDTO{}).Count(&areaCount).Error)
	suite.Equal(int64(2), areaCount, "Old area rows should be replaced, not kept")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_PersistsLoadChanges() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra")
	suite.tracker.On("TrackAggregate", testPartner.ID(), testPartner).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	suite.Require().NoError(testPartner.TakeOrder())
	suite.Require().NoError(testPartner.TakeOrder())
	suite.Require().NoError(suite.repository.Update(ctx, testPartner))

	retrieved, err := suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.CurrentLoad())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_NonExistentPartner_ReturnsError() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra")

	err := suite.repository.Update(ctx, testPartner)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestRemove_ExistingPartner_DeletesWithAreas() {
	ctx := context.Background()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra", "Andheri")
	suite.tracker.On("TrackAggregate", testPartner.ID(), testPartner).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	err := suite.repository.Remove(ctx, testPartner.ID())
	suite.Require().NoError(err)

	suite.assertPartnerCount(0)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestRemove_NonExistentPartner_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Remove(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllEligible_FiltersByStatusLoadAndArea() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	eligible := suite.createTestPartner("Eligible", "Bandra", "Andheri")
	suite.Require().NoError(suite.repository.Add(ctx, eligible))

	inactive := suite.createTestPartner("Inactive", "Bandra")
	inactive.Deactivate()
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	loaded := suite.createTestPartner("Loaded", "Bandra")
	for range partner.MaxCapacity {
		suite.Require().NoError(loaded.TakeOrder())
	}
	suite.Require().NoError(suite.repository.Add(ctx, loaded))

	elsewhere := suite.createTestPartner("Elsewhere", "Colaba")
	suite.Require().NoError(suite.repository.Add(ctx, elsewhere))

	results, err := suite.repository.GetAllEligible(ctx, "Bandra")
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(eligible.ID(), results[0].ID())
	suite.ElementsMatch([]string{"Bandra", "Andheri"}, results[0].Areas(),
		"Eligible partners should come back with their full coverage, not just the matched area")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllEligible_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra")
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	results, err := suite.repository.GetAllEligible(ctx, "Colaba")
	suite.Require().NoError(err)
	suite.Empty(results)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestConcurrentLoadUpdates_SerializePerPartner() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	testPartner := suite.createTestPartner("Ravi Kumar", "Bandra")
	suite.Require().NoError(suite.repository.Add(ctx, testPartner))

	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	repo1 := partnerrepo.NewGormPartnerRepository(tx1, suite.tracker)

	eligible, err := repo1.GetAllEligible(ctx, "Bandra")
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)

	first := eligible[0]
	suite.Require().NoError(first.TakeOrder())
	suite.Require().NoError(repo1.Update(ctx, first))

	secondDone := make(chan error, 1)
	go func() {
		tx2 := suite.db.Begin()
		if tx2.Error != nil {
			secondDone <- tx2.Error
			return
		}
		repo2 := partnerrepo.NewGormPartnerRepository(tx2, suite.tracker)

		second, getErr := repo2.Get(ctx, testPartner.ID())
		if getErr != nil {
			tx2.Rollback()
			secondDone <- getErr
			return
		}
		if takeErr := second.TakeOrder(); takeErr != nil {
			tx2.Rollback()
			secondDone <- takeErr
			return
		}
		if updateErr := repo2.Update(ctx, second); updateErr != nil {
			tx2.Rollback()
			secondDone <- updateErr
			return
		}
		secondDone <- tx2.Commit().Error
	}()

	// The second transaction must block on the locked partner row instead of
	// reading the pre-increment load.
	select {
	case earlyErr := <-secondDone:
		suite.Require().Fail("second transaction did not wait for the partner row lock", "err: %v", earlyErr)
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(tx1.Commit().Error)
	suite.Require().NoError(<-secondDone)

	retrieved, err := suite.repository.Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.CurrentLoad(), "Both increments must survive; a lost update means the reads were not serialized")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAll_SortedByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	charlie := suite.createTestPartner("Charlie", "Bandra")
	alice := suite.createTestPartner("Alice", "Andheri")
	bob := suite.createTestPartner("Bob", "Colaba")

	suite.Require().NoError(suite.repository.Add(ctx, charlie))
	suite.Require().NoError(suite.repository.Add(ctx, alice))
	suite.Require().NoError(suite.repository.Add(ctx, bob))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal("Alice", all[0].Name())
	suite.Equal("Bob", all[1].Name())
	suite.Equal("Charlie", all[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestPartner creates an active partner with a unique email.
func (suite *PartnerRepositoryIntegrationTestSuite) createTestPartner(name string, areas ...string) *partner.Partner {
	suite.seq++

	shift, err := partner.NewShift("09:00", "18:00")
	suite.Require().NoError(err)

	testPartner, err := partner.NewPartner(
		kernel.NewUUID(),
		name,
		fmt.Sprintf("partner%d@dispatch.test", suite.seq),
		"+91-9820011223",
		areas,
		shift,
	)
	suite.Require().NoError(err)
	return testPartner
}

// assertPartnerCount verifies the number of partners in the database.
func (suite *PartnerRepositoryIntegrationTestSuite) assertPartnerCount(expected int) {
	var count int64
	err := suite.db.Model(&partnerrepo.PartnerDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
