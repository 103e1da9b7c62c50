package establishmentrepo_test

import (
	"context"
	"testing"

	"backoffice/internal/adapters/out/postgres/establishmentrepo"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DeliveryFeeRepositoryTestSuite runs against either dialect; the array and JSON
// columns map differently on each.
type DeliveryFeeRepositoryTestSuite struct {
	suite.Suite
	usePostgres bool
	pg          *pgtest.Container
	db          *gorm.DB
	repository  *establishmentrepo.GormDeliveryFeeRepository
}

func (suite *DeliveryFeeRepositoryTestSuite) SetupSuite() {
	if suite.usePostgres {
		pg, err := pgtest.Start(context.Background())
		suite.Require().NoError(err)
		suite.pg = pg
	}
}

func (suite *DeliveryFeeRepositoryTestSuite) SetupTest() {
	if suite.usePostgres {
		suite.Require().NoError(suite.pg.Truncate())
		suite.db = suite.pg.DB
	} else {
		db, err := pgtest.OpenSQLite()
		suite.Require().NoError(err)
		suite.db = db
	}
	suite.repository = establishmentrepo.NewGormDeliveryFeeRepository(suite.db)
}

func (suite *DeliveryFeeRepositoryTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func neighborhoodConfig() deliveryfee.Config {
	cfg := deliveryfee.DefaultConfig()
	cfg.Modality = deliveryfee.NeighborhoodTiered
	cfg.MinimumOrderValue = kernel.MustMoney("20")
	cfg.ServedCities = []string{"Campinas", "Valinhos"}
	cfg.NeighborhoodTiers = []deliveryfee.NeighborhoodTier{
		{ID: "t1", Name: "Cambuí", City: "Campinas", FeeAmount: kernel.MustMoney("5.5"), Enabled: true},
		{ID: "t2", Name: "Centro", City: "Valinhos", FeeAmount: kernel.MustMoney("8"), Enabled: false},
	}
	cfg.DefaultFeeOtherNeighborhoods = kernel.MustMoney("12.9")
	return cfg
}

func (suite *DeliveryFeeRepositoryTestSuite) TestCreate_ThenGet_RoundTrips() {
	ctx := context.Background()
	id := kernel.NewUUID()
	cfg := neighborhoodConfig()

	suite.Require().NoError(suite.repository.Create(ctx, id, "Pizzaria Bella", cfg))

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(cfg.Equal(got), "diff: %v", deliveryfee.Diff(cfg, got).Fields())
	suite.Equal([]string{"Campinas", "Valinhos"}, got.ServedCities)
	suite.Equal("5.50", got.NeighborhoodTiers[0].FeeAmount.String())
}

func (suite *DeliveryFeeRepositoryTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryFeeRepositoryTestSuite) TestApplyPatch_WritesOnlyPatchedFields() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Create(ctx, id, "Pizzaria Bella", neighborhoodConfig()))

	// Another admin changed the minimum order meanwhile.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE establishments SET minimum_order_value = 35 WHERE id = ?", id.Bytes()).Error)

	flat := kernel.MustMoney("7")
	modality := deliveryfee.FlatFee
	suite.Require().NoError(suite.repository.ApplyPatch(ctx, id, deliveryfee.Patch{
		Modality:      &modality,
		FlatFeeAmount: &flat,
	}))

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(deliveryfee.FlatFee, got.Modality)
	suite.Equal("7.00", got.FlatFeeAmount.String())
	suite.Equal("35.00", got.MinimumOrderValue.String())
	suite.Len(got.NeighborhoodTiers, 2)
}

func (suite *DeliveryFeeRepositoryTestSuite) TestApplyPatch_ListsAreReplacedWhole() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Create(ctx, id, "Pizzaria Bella", neighborhoodConfig()))

	cities := []string{"Campinas"}
	tiers := []deliveryfee.DistanceTier{
		{ID: "d1", MaxDistanceKm: 3, FeeAmount: kernel.MustMoney("4"), Enabled: true},
	}
	suite.Require().NoError(suite.repository.ApplyPatch(ctx, id, deliveryfee.Patch{
		ServedCities:  &cities,
		DistanceTiers: &tiers,
	}))

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal([]string{"Campinas"}, got.ServedCities)
	suite.Require().Len(got.DistanceTiers, 1)
	suite.Equal(3.0, got.DistanceTiers[0].MaxDistanceKm)
}

func (suite *DeliveryFeeRepositoryTestSuite) TestApplyPatch_Missing_ReturnsNotFound() {
	radius := 5.0

	err := suite.repository.ApplyPatch(context.Background(), kernel.NewUUID(), deliveryfee.Patch{
		DeliveryRadiusKm: &radius,
	})

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryFeeRepositoryTestSuite) TestApplyPatch_Empty_IsNoop() {
	err := suite.repository.ApplyPatch(context.Background(), kernel.NewUUID(), deliveryfee.Patch{})

	suite.NoError(err)
}

func TestDeliveryFeeRepository_SQLite(t *testing.T) {
	suite.Run(t, new(DeliveryFeeRepositoryTestSuite))
}

func TestDeliveryFeeRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, &DeliveryFeeRepositoryTestSuite{usePostgres: true})
}
