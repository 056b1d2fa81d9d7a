package plan

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/revlytic/bplan/pkg/models/store"
	"github.com/revlytic/bplan/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func testPlan(id string) store.PlanRecord {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return store.PlanRecord{
		ID:                 id,
		Name:               "Albergo Aurora",
		Currency:           "EUR",
		Stars:              4,
		RoomCount:          90,
		OpeningDaysPerYear: 365,
		HasSpa:             true,
		HasRestaurant:      true,
		StartYear:          2026,
		ProjectionYears:    5,
		InitialInvestment:  2_000_000,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestPlanStore_CreateAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	record := testPlan("plan-1")
	require.NoError(t, f.store.CreatePlan(ctx, record))

	got, err := f.store.GetPlan(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.RoomCount, got.RoomCount)
	assert.Equal(t, record.OpeningDaysPerYear, got.OpeningDaysPerYear)
	assert.True(t, got.HasSpa)
	assert.False(t, got.HasCongressCenter)
	assert.Equal(t, record.InitialInvestment, got.InitialInvestment)
}

func TestPlanStore_GetMissing(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.GetPlan(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestPlanStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))
	second := testPlan("plan-2")
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	require.NoError(t, f.store.CreatePlan(ctx, second))

	plans, err := f.store.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	// Newest first.
	assert.Equal(t, "plan-2", plans[0].ID)
	assert.Equal(t, "plan-1", plans[1].ID)
}

func TestPlanStore_Update(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	record := testPlan("plan-1")
	require.NoError(t, f.store.CreatePlan(ctx, record))

	record.Name = "Albergo Aurora II"
	record.RoomCount = 120
	record.UpdatedAt = record.UpdatedAt.Add(time.Hour)
	require.NoError(t, f.store.UpdatePlan(ctx, record))

	got, err := f.store.GetPlan(ctx, "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "Albergo Aurora II", got.Name)
	assert.Equal(t, 120, got.RoomCount)

	missing := testPlan("ghost")
	err = f.store.UpdatePlan(ctx, missing)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestPlanStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))
	require.NoError(t, f.store.DeletePlan(ctx, "plan-1"))

	_, err := f.store.GetPlan(ctx, "plan-1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)

	err = f.store.DeletePlan(ctx, "plan-1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestPlanStore_Years(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))

	year := store.YearAssumptionsRecord{
		PlanID:              "plan-1",
		Year:                2027,
		OccupancyRatePct:    65,
		AverageDailyRate:    180,
		FBRevenuePct:        30,
		OTASharePct:         40,
		OTACommissionPct:    18,
		InitialInvestment:   2_000_000,
		DepreciationYears:   20,
		LoanAmount:          1_500_000,
		LoanInterestRatePct: 4.5,
		TaxRatePct:          27.9,
	}
	require.NoError(t, f.store.UpsertYear(ctx, year))

	earlier := year
	earlier.Year = 2026
	earlier.OccupancyRatePct = 55
	require.NoError(t, f.store.UpsertYear(ctx, earlier))

	years, err := f.store.GetYears(ctx, "plan-1")
	require.NoError(t, err)
	require.Len(t, years, 2)
	// Ordered by year.
	assert.Equal(t, 2026, years[0].Year)
	assert.Equal(t, 2027, years[1].Year)
	assert.Equal(t, 55.0, years[0].OccupancyRatePct)
	assert.Equal(t, 27.9, years[1].TaxRatePct)
}

func TestPlanStore_UpsertYearOverwrites(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))

	year := store.YearAssumptionsRecord{
		PlanID:            "plan-1",
		Year:              2026,
		OccupancyRatePct:  60,
		AverageDailyRate:  150,
		DepreciationYears: 20,
		TaxRatePct:        27.9,
	}
	require.NoError(t, f.store.UpsertYear(ctx, year))

	year.OccupancyRatePct = 72.5
	year.AverageDailyRate = 165
	require.NoError(t, f.store.UpsertYear(ctx, year))

	years, err := f.store.GetYears(ctx, "plan-1")
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, 72.5, years[0].OccupancyRatePct)
	assert.Equal(t, 165.0, years[0].AverageDailyRate)
}

func TestPlanStore_DeleteYear(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))
	require.NoError(t, f.store.UpsertYear(ctx, store.YearAssumptionsRecord{
		PlanID: "plan-1", Year: 2026, DepreciationYears: 20,
	}))

	require.NoError(t, f.store.DeleteYear(ctx, "plan-1", 2026))

	years, err := f.store.GetYears(ctx, "plan-1")
	require.NoError(t, err)
	assert.Empty(t, years)

	err = f.store.DeleteYear(ctx, "plan-1", 2026)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestPlanStore_DeletePlanCascadesYears(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.CreatePlan(ctx, testPlan("plan-1")))
	require.NoError(t, f.store.UpsertYear(ctx, store.YearAssumptionsRecord{
		PlanID: "plan-1", Year: 2026, DepreciationYears: 20,
	}))
	require.NoError(t, f.store.DeletePlan(ctx, "plan-1"))

	var count int
	err := f.db.QueryRow("SELECT COUNT(*) FROM plan_years WHERE plan_id = ?", "plan-1").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}
