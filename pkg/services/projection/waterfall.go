package projection

import "github.com/revlytic/bplan/pkg/models/domain"

// assembleWaterfall applies financial statement semantics in strict order:
// contribution margin, EBITDA, depreciation, EBIT, interest, EBT, taxes, net
// income. The order is part of the contract with renderers; terms must not be
// reassociated.
func assembleWaterfall(
	year domain.YearAssumptions,
	rev revenueLines,
	variable variableCostLines,
	fixed fixedCostLines,
) domain.YearResult {
	contributionMargin := rev.total - variable.total
	ebitda := contributionMargin - fixed.total

	depreciation := year.InitialInvestment / float64(year.DepreciationYears)
	ebit := ebitda - depreciation

	// Simple annual interest on the full principal; no amortization schedule.
	interest := year.LoanAmount * year.LoanInterestRatePct / 100
	ebt := ebit - interest

	// A loss year pays zero tax and carries nothing forward.
	var taxes float64
	if ebt > 0 {
		taxes = ebt * year.TaxRatePct / 100
	}
	netIncome := ebt - taxes

	return domain.YearResult{
		Year: year.Year,

		RoomNights:          rev.roomNights,
		AvailableRoomNights: rev.availableNights,

		RoomRevenue:     rev.room,
		FBRevenue:       rev.fb,
		SpaRevenue:      rev.spa,
		CongressRevenue: rev.congress,
		OtherRevenue:    rev.other,
		TotalRevenue:    rev.total,

		RoomCosts:          variable.room,
		FBCosts:            variable.fb,
		SpaCosts:           variable.spa,
		CongressCosts:      variable.congress,
		OTACommissions:     variable.otaCommissions,
		TotalVariableCosts: variable.total,

		ContributionMargin: contributionMargin,

		StaffCost:       fixed.staff,
		RentCost:        fixed.rent,
		UtilitiesCost:   fixed.utilities,
		MaintenanceCost: fixed.maintenance,
		InsuranceCost:   fixed.insurance,
		MarketingCost:   fixed.marketing,
		AdminCost:       fixed.admin,
		OtherFixedCost:  fixed.other,
		TotalFixedCosts: fixed.total,

		EBITDA:          ebitda,
		Depreciation:    depreciation,
		EBIT:            ebit,
		InterestExpense: interest,
		EBT:             ebt,
		Taxes:           taxes,
		NetIncome:       netIncome,
	}
}
