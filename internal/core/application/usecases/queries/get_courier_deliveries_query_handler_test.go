package queries_test

import (
	"context"
	"testing"
	"time"

	"deliveryconnect/internal/adapters/out/postgres/deliveryrepo"
	"deliveryconnect/internal/core/application/usecases/queries"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCourierDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCourierDeliveriesQueryHandler
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))

	suite.handler = queries.NewGetCourierDeliveriesQueryHandler(db)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
}

type courierDeliverySeed struct {
	courierID   uuid.UUID
	status      string
	earning     float64
	createdAt   time.Time
	collectedAt *time.Time
	completedAt *time.Time
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) seed(s courierDeliverySeed) string {
	dto := deliveryrepo.DeliveryDTO{
		ID:             delivery.NewID(s.createdAt).String(),
		CommerceID:     uuid.New(),
		CommerceName:   "Pizza Hub",
		Address:        "Av. Paulista 1000",
		Value:          s.earning / 0.7,
		MotoboyEarning: s.earning,
		Status:         s.status,
		CreatedAt:      s.createdAt,
		MotoboyID:      &s.courierID,
		MotoboyName:    "John Doe",
		CollectedAt:    s.collectedAt,
		CompletedAt:    s.completedAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	query, err := queries.NewGetCourierDeliveriesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Active)
	suite.Empty(result.Completed)
	suite.Zero(result.TotalCompleted)
	suite.Zero(result.TotalEarnings)
	suite.Zero(result.TodayEarnings)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_SplitsActiveAndCompleted() {
	courierID := kernel.NewUUID()
	now := time.Now()
	collected := now.Add(-10 * time.Second)
	completed := now.Add(-time.Minute)

	activeID := suite.seed(courierDeliverySeed{
		courierID:   courierID.Bytes(),
		status:      "collected",
		earning:     35,
		createdAt:   now.Add(-15 * time.Second),
		collectedAt: &collected,
	})
	completedID := suite.seed(courierDeliverySeed{
		courierID:   courierID.Bytes(),
		status:      "completed",
		earning:     14,
		createdAt:   now.Add(-2 * time.Hour),
		completedAt: &completed,
	})

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Active, 1)
	suite.Equal(activeID, result.Active[0].ID)
	suite.Equal("collected", result.Active[0].Status)
	suite.Require().Len(result.Completed, 1)
	suite.Equal(completedID, result.Completed[0].ID)
	suite.Equal(1, result.TotalCompleted)
	suite.InDelta(14.0, result.TotalEarnings, 0.0001)
	suite.InDelta(14.0, result.TodayEarnings, 0.0001)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_RelabelsStuckCollectedRows() {
	courierID := kernel.NewUUID()
	staleCollected := time.Now().Add(-5 * time.Minute)

	suite.seed(courierDeliverySeed{
		courierID:   courierID.Bytes(),
		status:      "collected",
		earning:     35,
		createdAt:   time.Now().Add(-6 * time.Minute),
		collectedAt: &staleCollected,
	})

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Active, 1)
	suite.Equal("in_progress", result.Active[0].Status)

	// The stored row is untouched; only the read model is adjusted.
	var stored deliveryrepo.DeliveryDTO
	suite.Require().NoError(suite.db.First(&stored).Error)
	suite.Equal("collected", stored.Status)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_TodayEarningsExcludeOlderDays() {
	courierID := kernel.NewUUID()
	today := time.Now()
	yesterday := time.Now().Add(-26 * time.Hour)

	suite.seed(courierDeliverySeed{
		courierID:   courierID.Bytes(),
		status:      "completed",
		earning:     35,
		createdAt:   today.Add(-time.Hour),
		completedAt: &today,
	})
	suite.seed(courierDeliverySeed{
		courierID:   courierID.Bytes(),
		status:      "completed",
		earning:     14,
		createdAt:   yesterday.Add(-time.Hour),
		completedAt: &yesterday,
	})

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(2, result.TotalCompleted)
	suite.InDelta(49.0, result.TotalEarnings, 0.0001)
	suite.InDelta(35.0, result.TodayEarnings, 0.0001)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_IgnoresOtherCouriers() {
	courierID := kernel.NewUUID()
	otherCourier := uuid.New()
	collected := time.Now().Add(-5 * time.Second)

	suite.seed(courierDeliverySeed{
		courierID:   otherCourier,
		status:      "collected",
		earning:     35,
		createdAt:   time.Now().Add(-10 * time.Second),
		collectedAt: &collected,
	})

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Active)
	suite.Empty(result.Completed)
}

func TestGetCourierDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierDeliveriesQueryHandlerTestSuite))
}
