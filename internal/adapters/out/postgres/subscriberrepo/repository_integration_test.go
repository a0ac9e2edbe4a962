package subscriberrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/subscriberrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SubscriberRepositoryIntegrationTestSuite provides integration tests for
// SubscriberRepository using PostgreSQL containers.
type SubscriberRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *subscriberrepo.GormSubscriberRepository
	tracker    *MockAggregateTracker
}

func (suite *SubscriberRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&subscriberrepo.SubscriberDTO{}))
}

func (suite *SubscriberRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE subscribers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = subscriberrepo.NewGormSubscriberRepository(suite.db, suite.tracker)
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestAdd_ValidSubscriber_Success() {
	ctx := context.Background()
	s := suite.createTestSubscriber("jane@example.com", true)

	suite.tracker.On("TrackAggregate", s.ID(), s).Once()

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.assertSubscriberCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_AlreadyExists() {
	ctx := context.Background()
	first := suite.createTestSubscriber("jane@example.com", true)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// The Email value object lowercases, so "JANE@..." collides with "jane@...".
	duplicate := suite.createTestSubscriber("JANE@Example.com", false)

	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertSubscriberCount(1)
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestGet_RoundTrips() {
	ctx := context.Background()
	original := suite.createTestSubscriber("jane@example.com", true)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(original))
	suite.Equal("jane@example.com", retrieved.Email().String())
	suite.Equal("Jane", retrieved.FirstName())
	suite.True(retrieved.IsActive())
	suite.Nil(retrieved.UnsubscribedAt())
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	original := suite.createTestSubscriber("jane@example.com", true)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	email, err := kernel.NewEmail("jane@example.com")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByEmail(ctx, email)
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(original))
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestUpdate_SoftDelete_Persists() {
	ctx := context.Background()
	s := suite.createTestSubscriber("jane@example.com", true)

	suite.tracker.On("TrackAggregate", s.ID(), s).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	s.Deactivate(time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, s))

	retrieved, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.NotNil(retrieved.UnsubscribedAt())
	// Soft delete keeps the row.
	suite.assertSubscriberCount(1)
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestGetAllActive_FiltersOptIn() {
	ctx := context.Background()

	optedIn := suite.createTestSubscriber("a@example.com", true)
	optedOut := suite.createTestSubscriber("b@example.com", false)
	inactive := suite.createTestSubscriber("c@example.com", true)
	inactive.Deactivate(time.Now())

	for _, s := range []*subscriber.Subscriber{optedIn, optedOut, inactive} {
		suite.tracker.On("TrackAggregate", s.ID(), s).Once()
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	all, err := suite.repository.GetAllActive(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	wantsPromotions := true
	campaign, err := suite.repository.GetAllActive(ctx, &wantsPromotions)
	suite.Require().NoError(err)
	suite.Require().Len(campaign, 1)
	suite.True(campaign[0].IsEqual(optedIn))
}

func (suite *SubscriberRepositoryIntegrationTestSuite) TestGetActiveByIDs_SkipsUnknownAndInactive() {
	ctx := context.Background()

	active := suite.createTestSubscriber("a@example.com", true)
	inactive := suite.createTestSubscriber("b@example.com", true)
	inactive.Deactivate(time.Now())

	for _, s := range []*subscriber.Subscriber{active, inactive} {
		suite.tracker.On("TrackAggregate", s.ID(), s).Once()
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	resolved, err := suite.repository.GetActiveByIDs(ctx, []kernel.UUID{
		active.ID(), inactive.ID(), kernel.NewUUID(),
	})

	suite.Require().NoError(err)
	suite.Require().Len(resolved, 1)
	suite.True(resolved[0].IsEqual(active))
}

func (suite *SubscriberRepositoryIntegrationTestSuite) createTestSubscriber(
	email string, wantsPromotions bool,
) *subscriber.Subscriber {
	emailVO, err := kernel.NewEmail(email)
	suite.Require().NoError(err)

	s, err := subscriber.NewSubscriber(
		kernel.NewUUID(), emailVO, "Jane", "Doe", wantsPromotions, time.Now())
	suite.Require().NoError(err)

	return s
}

func (suite *SubscriberRepositoryIntegrationTestSuite) assertSubscriberCount(expected int) {
	var count int64
	err := suite.db.Model(&subscriberrepo.SubscriberDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestSubscriberRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriberRepositoryIntegrationTestSuite))
}
