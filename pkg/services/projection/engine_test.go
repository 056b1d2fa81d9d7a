package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePlan() domain.Plan {
	return domain.Plan{
		ID:                 "plan-1",
		Name:               "Albergo Aurora",
		Currency:           "EUR",
		Stars:              4,
		RoomCount:          90,
		OpeningDaysPerYear: 365,
		HasSpa:             true,
		HasRestaurant:      true,
		HasCongressCenter:  true,
		StartYear:          2026,
		ProjectionYears:    5,
	}
}

func baseYear() domain.YearAssumptions {
	return domain.YearAssumptions{
		Year:                2026,
		OccupancyRatePct:    65,
		AverageDailyRate:    180,
		InitialInvestment:   2_000_000,
		DepreciationYears:   20,
		LoanAmount:          1_500_000,
		LoanInterestRatePct: 4.5,
		TaxRatePct:          27.9,
	}
}

func TestComputeYear_GoldenScenario(t *testing.T) {
	// 90 rooms, 365 days, 65% occupancy, ADR 180, no ancillary revenue and no
	// operating costs configured.
	result, err := ComputeYear(basePlan(), baseYear())
	require.NoError(t, err)

	assert.InDelta(t, 21_352.5, result.RoomNights, 1e-9)
	assert.InDelta(t, 32_850, result.AvailableRoomNights, 1e-9)
	assert.InDelta(t, 3_843_450, result.RoomRevenue, 1e-6)
	assert.InDelta(t, 3_843_450, result.TotalRevenue, 1e-6)
	assert.InDelta(t, 0, result.TotalVariableCosts, 1e-9)
	assert.InDelta(t, 0, result.TotalFixedCosts, 1e-9)
	assert.InDelta(t, 3_843_450, result.EBITDA, 1e-6)
	assert.InDelta(t, 100_000, result.Depreciation, 1e-9)
	assert.InDelta(t, 3_743_450, result.EBIT, 1e-6)
	assert.InDelta(t, 67_500, result.InterestExpense, 1e-9)
	assert.InDelta(t, 3_675_950, result.EBT, 1e-6)
	assert.InDelta(t, 1_025_590.05, result.Taxes, 1e-4)
	assert.InDelta(t, 2_650_359.95, result.NetIncome, 1e-4)

	// RevPAR collapses to ADR x occupancy when only rooms produce revenue.
	assert.InDelta(t, 117, result.RevPAR, 1e-9)
	assert.InDelta(t, 117, result.TotalRevPAR, 1e-9)
	assert.InDelta(t, 117, result.GOPPAR, 1e-9)
}

func TestComputeYear_FullOperatingYear(t *testing.T) {
	plan := basePlan()
	year := baseYear()
	year.FBRevenuePct = 30
	year.SpaRevenuePct = 12
	year.CongressRevenuePct = 8
	year.OtherRevenuePct = 4
	year.RoomCostPct = 25
	year.FBCostPct = 60
	year.SpaCostPct = 45
	year.CongressCostPct = 40
	year.OTASharePct = 40
	year.OTACommissionPct = 18
	year.StaffCostMonthly = 85_000
	year.RentCostMonthly = 30_000
	year.UtilitiesCostMonthly = 12_000
	year.MaintenanceCostMonthly = 8_000
	year.InsuranceCostMonthly = 3_500
	year.MarketingCostMonthly = 9_000
	year.AdminCostMonthly = 6_500
	year.OtherFixedMonthly = 4_000

	result, err := ComputeYear(plan, year)
	require.NoError(t, err)

	room := result.RoomRevenue
	assert.InDelta(t, room*0.30, result.FBRevenue, 1e-6)
	assert.InDelta(t, room*0.12, result.SpaRevenue, 1e-6)
	assert.InDelta(t, room*0.08, result.CongressRevenue, 1e-6)
	assert.InDelta(t, room*0.04, result.OtherRevenue, 1e-6)
	assert.InDelta(t,
		room+result.FBRevenue+result.SpaRevenue+result.CongressRevenue+result.OtherRevenue,
		result.TotalRevenue, 1e-6)

	// OTA commission applies only to the OTA-attributed share of room revenue.
	assert.InDelta(t, room*0.40*0.18, result.OTACommissions, 1e-6)

	assert.InDelta(t, 12*(85_000+30_000+12_000+8_000+3_500+9_000+6_500+4_000),
		result.TotalFixedCosts, 1e-6)

	assert.InDelta(t, result.TotalRevenue-result.TotalVariableCosts,
		result.ContributionMargin, 1e-6)
	assert.InDelta(t, result.ContributionMargin-result.TotalFixedCosts,
		result.EBITDA, 1e-6)
	assert.InDelta(t, result.TotalRevenue/result.AvailableRoomNights,
		result.TotalRevPAR, 1e-9)
}

func TestComputeYear_WaterfallIdentity(t *testing.T) {
	// The step-wise waterfall must equal the flattened formula across a
	// spread of operating profiles, including loss years.
	scenarios := []struct {
		name string
		mut  func(*domain.YearAssumptions)
	}{
		{"profitable", func(y *domain.YearAssumptions) {}},
		{"high costs", func(y *domain.YearAssumptions) {
			y.RoomCostPct = 80
			y.StaffCostMonthly = 250_000
		}},
		{"loss year", func(y *domain.YearAssumptions) {
			y.OccupancyRatePct = 10
			y.StaffCostMonthly = 400_000
			y.RentCostMonthly = 90_000
		}},
		{"zero occupancy", func(y *domain.YearAssumptions) {
			y.OccupancyRatePct = 0
		}},
		{"heavy leverage", func(y *domain.YearAssumptions) {
			y.LoanAmount = 30_000_000
			y.LoanInterestRatePct = 9.5
		}},
	}

	for _, tc := range scenarios {
		t.Run(tc.name, func(t *testing.T) {
			year := baseYear()
			year.FBRevenuePct = 25
			year.RoomCostPct = 22
			tc.mut(&year)

			result, err := ComputeYear(basePlan(), year)
			require.NoError(t, err)

			flattened := result.TotalRevenue - result.TotalVariableCosts -
				result.TotalFixedCosts - result.Depreciation -
				result.InterestExpense - result.Taxes
			assert.InDelta(t, flattened, result.NetIncome, 1e-6)
		})
	}
}

func TestComputeYear_FacilityGating(t *testing.T) {
	plan := basePlan()
	plan.HasSpa = false
	plan.HasCongressCenter = false

	year := baseYear()
	year.SpaRevenuePct = 12
	year.SpaCostPct = 45
	year.CongressRevenuePct = 9
	year.CongressCostPct = 40
	year.FBRevenuePct = 20

	result, err := ComputeYear(plan, year)
	require.NoError(t, err)

	// Exactly zero, not merely hidden: a disabled facility contributes
	// nothing regardless of the configured percentages.
	assert.Zero(t, result.SpaRevenue)
	assert.Zero(t, result.SpaCosts)
	assert.Zero(t, result.CongressRevenue)
	assert.Zero(t, result.CongressCosts)
	assert.Positive(t, result.FBRevenue)
}

func TestComputeYear_RestaurantGating(t *testing.T) {
	plan := basePlan()
	plan.HasRestaurant = false

	year := baseYear()
	year.FBRevenuePct = 35
	year.FBCostPct = 60

	result, err := ComputeYear(plan, year)
	require.NoError(t, err)
	assert.Zero(t, result.FBRevenue)
	assert.Zero(t, result.FBCosts)
}

func TestComputeYear_TaxFloor(t *testing.T) {
	year := baseYear()
	year.OccupancyRatePct = 5
	year.StaffCostMonthly = 500_000

	result, err := ComputeYear(basePlan(), year)
	require.NoError(t, err)

	require.Less(t, result.EBT, 0.0)
	assert.Zero(t, result.Taxes)
	assert.InDelta(t, result.EBT, result.NetIncome, 1e-9)
}

func TestComputeYear_ZeroOccupancy(t *testing.T) {
	year := baseYear()
	year.OccupancyRatePct = 0
	year.FBRevenuePct = 30
	year.OtherRevenuePct = 5

	result, err := ComputeYear(basePlan(), year)
	require.NoError(t, err)

	assert.Zero(t, result.RoomNights)
	assert.Zero(t, result.RoomRevenue)
	assert.Zero(t, result.FBRevenue)
	assert.Zero(t, result.OtherRevenue)
	assert.Zero(t, result.TotalRevenue)
	// KPIs stay defined because available room nights is still positive.
	assert.Zero(t, result.RevPAR)
}

func TestComputeYear_Determinism(t *testing.T) {
	plan := basePlan()
	year := baseYear()
	year.FBRevenuePct = 27.5
	year.RoomCostPct = 21.3

	first, err := ComputeYear(plan, year)
	require.NoError(t, err)
	second, err := ComputeYear(plan, year)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeYear_NonNegativeRevenue(t *testing.T) {
	occupancies := []float64{0, 0.5, 33.3, 65, 100}
	for _, occ := range occupancies {
		year := baseYear()
		year.OccupancyRatePct = occ
		year.FBRevenuePct = 18
		year.SpaRevenuePct = 7
		year.CongressRevenuePct = 3
		year.OtherRevenuePct = 2

		result, err := ComputeYear(basePlan(), year)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.RoomRevenue, 0.0)
		assert.GreaterOrEqual(t, result.FBRevenue, 0.0)
		assert.GreaterOrEqual(t, result.SpaRevenue, 0.0)
		assert.GreaterOrEqual(t, result.CongressRevenue, 0.0)
		assert.GreaterOrEqual(t, result.OtherRevenue, 0.0)
	}
}

func TestComputeYear_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutPlan func(*domain.Plan)
		mutYear func(*domain.YearAssumptions)
		divZero bool
	}{
		{
			name:    "zero room count",
			mutPlan: func(p *domain.Plan) { p.RoomCount = 0 },
		},
		{
			name:    "negative room count",
			mutPlan: func(p *domain.Plan) { p.RoomCount = -3 },
		},
		{
			name:    "zero opening days",
			mutPlan: func(p *domain.Plan) { p.OpeningDaysPerYear = 0 },
		},
		{
			name:    "opening days beyond leap year",
			mutPlan: func(p *domain.Plan) { p.OpeningDaysPerYear = 367 },
		},
		{
			name:    "occupancy above 100",
			mutYear: func(y *domain.YearAssumptions) { y.OccupancyRatePct = 101 },
		},
		{
			name:    "negative tax rate",
			mutYear: func(y *domain.YearAssumptions) { y.TaxRatePct = -1 },
		},
		{
			name:    "negative ADR",
			mutYear: func(y *domain.YearAssumptions) { y.AverageDailyRate = -50 },
		},
		{
			name:    "NaN occupancy",
			mutYear: func(y *domain.YearAssumptions) { y.OccupancyRatePct = math.NaN() },
		},
		{
			name:    "infinite loan amount",
			mutYear: func(y *domain.YearAssumptions) { y.LoanAmount = math.Inf(1) },
		},
		{
			name:    "zero depreciation years",
			mutYear: func(y *domain.YearAssumptions) { y.DepreciationYears = 0 },
			divZero: true,
		},
		{
			name:    "negative depreciation years",
			mutYear: func(y *domain.YearAssumptions) { y.DepreciationYears = -5 },
			divZero: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := basePlan()
			year := baseYear()
			if tc.mutPlan != nil {
				tc.mutPlan(&plan)
			}
			if tc.mutYear != nil {
				tc.mutYear(&year)
			}

			_, err := ComputeYear(plan, year)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			if tc.divZero {
				assert.ErrorIs(t, err, ErrDivisionByZero)
			} else {
				assert.False(t, errors.Is(err, ErrDivisionByZero))
			}
		})
	}
}

func TestComputePlan_CalendarOrder(t *testing.T) {
	plan := basePlan()
	years := []domain.YearAssumptions{}
	for _, y := range []int{2028, 2026, 2027} {
		year := baseYear()
		year.Year = y
		years = append(years, year)
	}

	outcomes := ComputePlan(plan, years)
	require.Len(t, outcomes, 3)
	assert.Equal(t, 2026, outcomes[0].Year)
	assert.Equal(t, 2027, outcomes[1].Year)
	assert.Equal(t, 2028, outcomes[2].Year)
	for _, o := range outcomes {
		require.NoError(t, o.Err)
		require.NotNil(t, o.Result)
	}
}

func TestComputePlan_InvalidYearDoesNotBlockOthers(t *testing.T) {
	plan := basePlan()

	good := baseYear()
	good.Year = 2026
	bad := baseYear()
	bad.Year = 2027
	bad.DepreciationYears = 0
	alsoGood := baseYear()
	alsoGood.Year = 2028

	outcomes := ComputePlan(plan, []domain.YearAssumptions{good, bad, alsoGood})
	require.Len(t, outcomes, 3)

	assert.NoError(t, outcomes[0].Err)
	assert.NotNil(t, outcomes[0].Result)

	assert.Error(t, outcomes[1].Err)
	assert.ErrorIs(t, outcomes[1].Err, ErrDivisionByZero)
	assert.Nil(t, outcomes[1].Result)

	assert.NoError(t, outcomes[2].Err)
	assert.NotNil(t, outcomes[2].Result)
}

func TestComputePlan_YearsAreIndependent(t *testing.T) {
	plan := basePlan()

	lone := baseYear()
	lone.Year = 2027

	// The same year computed alone and computed inside a longer sequence must
	// produce identical figures: no carry-forward state crosses years.
	soloResult, err := ComputeYear(plan, lone)
	require.NoError(t, err)

	prev := baseYear()
	prev.Year = 2026
	prev.OccupancyRatePct = 40
	next := baseYear()
	next.Year = 2028
	next.LoanAmount = 9_000_000

	outcomes := ComputePlan(plan, []domain.YearAssumptions{prev, lone, next})
	require.Len(t, outcomes, 3)
	require.NotNil(t, outcomes[1].Result)
	assert.Equal(t, soloResult, *outcomes[1].Result)
}
