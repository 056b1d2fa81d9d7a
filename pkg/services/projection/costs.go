package projection

import "github.com/revlytic/bplan/pkg/models/domain"

const monthsPerYear = 12

type variableCostLines struct {
	room           float64
	fb             float64
	spa            float64
	congress       float64
	otaCommissions float64
	total          float64
}

type fixedCostLines struct {
	staff       float64
	rent        float64
	utilities   float64
	maintenance float64
	insurance   float64
	marketing   float64
	admin       float64
	other       float64
	total       float64
}

// computeVariableCosts applies each stream's cost percentage to that stream's
// revenue. OTA commission is a two-stage rate: commission percent applied to
// the OTA-attributed share of room revenue only, never to total revenue.
func computeVariableCosts(year domain.YearAssumptions, rev revenueLines) variableCostLines {
	room := rev.room * year.RoomCostPct / 100
	fb := rev.fb * year.FBCostPct / 100
	spa := rev.spa * year.SpaCostPct / 100
	congress := rev.congress * year.CongressCostPct / 100
	ota := rev.room * (year.OTASharePct / 100) * (year.OTACommissionPct / 100)

	return variableCostLines{
		room:           room,
		fb:             fb,
		spa:            spa,
		congress:       congress,
		otaCommissions: ota,
		total:          room + fb + spa + congress + ota,
	}
}

func computeFixedCosts(year domain.YearAssumptions) fixedCostLines {
	f := fixedCostLines{
		staff:       year.StaffCostMonthly * monthsPerYear,
		rent:        year.RentCostMonthly * monthsPerYear,
		utilities:   year.UtilitiesCostMonthly * monthsPerYear,
		maintenance: year.MaintenanceCostMonthly * monthsPerYear,
		insurance:   year.InsuranceCostMonthly * monthsPerYear,
		marketing:   year.MarketingCostMonthly * monthsPerYear,
		admin:       year.AdminCostMonthly * monthsPerYear,
		other:       year.OtherFixedMonthly * monthsPerYear,
	}
	f.total = f.staff + f.rent + f.utilities + f.maintenance +
		f.insurance + f.marketing + f.admin + f.other
	return f
}
