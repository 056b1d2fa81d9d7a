package projection

import (
	"math"

	"github.com/revlytic/bplan/pkg/models/domain"
)

// Validate checks a (plan, year) pair eagerly, before any arithmetic.
// Percentages must sit in [0, 100], capacity must be positive, depreciation
// years must be positive, and every numeric driver must be finite and
// non-negative.
func Validate(plan domain.Plan, year domain.YearAssumptions) error {
	if plan.RoomCount <= 0 {
		return invalidf("room count %d must be positive", plan.RoomCount)
	}
	if plan.OpeningDaysPerYear < 1 || plan.OpeningDaysPerYear > 366 {
		return invalidf("opening days %d outside [1,366]", plan.OpeningDaysPerYear)
	}

	percentages := []struct {
		name  string
		value float64
	}{
		{"occupancy rate", year.OccupancyRatePct},
		{"f&b revenue", year.FBRevenuePct},
		{"spa revenue", year.SpaRevenuePct},
		{"congress revenue", year.CongressRevenuePct},
		{"other revenue", year.OtherRevenuePct},
		{"room cost", year.RoomCostPct},
		{"f&b cost", year.FBCostPct},
		{"spa cost", year.SpaCostPct},
		{"congress cost", year.CongressCostPct},
		{"ota share", year.OTASharePct},
		{"ota commission", year.OTACommissionPct},
		{"loan interest rate", year.LoanInterestRatePct},
		{"tax rate", year.TaxRatePct},
	}
	for _, p := range percentages {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return invalidf("%s percentage is not a finite number", p.name)
		}
		if p.value < 0 || p.value > 100 {
			return invalidf("%s percentage %.2f outside [0,100]", p.name, p.value)
		}
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"average daily rate", year.AverageDailyRate},
		{"staff cost", year.StaffCostMonthly},
		{"rent cost", year.RentCostMonthly},
		{"utilities cost", year.UtilitiesCostMonthly},
		{"maintenance cost", year.MaintenanceCostMonthly},
		{"insurance cost", year.InsuranceCostMonthly},
		{"marketing cost", year.MarketingCostMonthly},
		{"admin cost", year.AdminCostMonthly},
		{"other fixed cost", year.OtherFixedMonthly},
		{"initial investment", year.InitialInvestment},
		{"loan amount", year.LoanAmount},
	}
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return invalidf("%s is not a finite number", a.name)
		}
		if a.value < 0 {
			return invalidf("%s %.2f must not be negative", a.name, a.value)
		}
	}

	if year.DepreciationYears <= 0 {
		return divisionByZerof("depreciation years %d must be positive", year.DepreciationYears)
	}

	return nil
}
