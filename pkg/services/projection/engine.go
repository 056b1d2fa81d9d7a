// Package projection is the canonical business-plan calculation engine.
// Every consumer (interactive editor, printable export, shared read-only
// view) renders the output of ComputeYear/ComputePlan; none of them carries
// its own arithmetic. The engine is pure: no I/O, no clock, no shared state,
// safe to call concurrently from any number of renderers.
package projection

import (
	"math"
	"sort"

	"github.com/revlytic/bplan/pkg/models/domain"
)

// ComputeYear maps one year's assumptions to its full P&L waterfall and KPIs.
// Inputs are validated before any arithmetic; the result is guaranteed free
// of NaN and infinities.
func ComputeYear(plan domain.Plan, year domain.YearAssumptions) (domain.YearResult, error) {
	if err := Validate(plan, year); err != nil {
		return domain.YearResult{}, err
	}

	rev := computeRevenue(plan, year)
	variable := computeVariableCosts(year, rev)
	fixed := computeFixedCosts(year)

	result := assembleWaterfall(year, rev, variable, fixed)
	if err := applyKPIs(&result); err != nil {
		return domain.YearResult{}, err
	}
	if err := checkFinite(result); err != nil {
		return domain.YearResult{}, err
	}
	return result, nil
}

// ComputePlan runs ComputeYear independently for each year and returns the
// outcomes in calendar order. Years never share state: no cumulative
// depreciation base, no debt paydown, no loss carryforward. An invalid year
// yields an outcome carrying its error without blocking the valid ones.
func ComputePlan(plan domain.Plan, years []domain.YearAssumptions) []domain.YearOutcome {
	ordered := make([]domain.YearAssumptions, len(years))
	copy(ordered, years)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })

	outcomes := make([]domain.YearOutcome, 0, len(ordered))
	for _, year := range ordered {
		result, err := ComputeYear(plan, year)
		if err != nil {
			outcomes = append(outcomes, domain.YearOutcome{Year: year.Year, Err: err})
			continue
		}
		r := result
		outcomes = append(outcomes, domain.YearOutcome{Year: year.Year, Result: &r})
	}
	return outcomes
}

// checkFinite converts any non-finite figure into an explicit error so a
// caller never observes NaN or Infinity.
func checkFinite(r domain.YearResult) error {
	figures := []float64{
		r.RoomNights, r.AvailableRoomNights,
		r.RoomRevenue, r.FBRevenue, r.SpaRevenue, r.CongressRevenue, r.OtherRevenue, r.TotalRevenue,
		r.RoomCosts, r.FBCosts, r.SpaCosts, r.CongressCosts, r.OTACommissions, r.TotalVariableCosts,
		r.ContributionMargin,
		r.StaffCost, r.RentCost, r.UtilitiesCost, r.MaintenanceCost,
		r.InsuranceCost, r.MarketingCost, r.AdminCost, r.OtherFixedCost, r.TotalFixedCosts,
		r.EBITDA, r.Depreciation, r.EBIT, r.InterestExpense, r.EBT, r.Taxes, r.NetIncome,
		r.RevPAR, r.TotalRevPAR, r.GOPPAR,
	}
	for _, f := range figures {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return invalidf("projection for year %d produced a non-finite figure", r.Year)
		}
	}
	return nil
}
