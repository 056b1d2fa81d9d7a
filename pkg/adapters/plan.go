package adapters

import (
	"github.com/revlytic/bplan/pkg/models/api"
	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/revlytic/bplan/pkg/models/store"
)

func MapStorePlanToDomain(record store.PlanRecord) domain.Plan {
	return domain.Plan{
		ID:                 record.ID,
		Name:               record.Name,
		Currency:           record.Currency,
		Stars:              record.Stars,
		RoomCount:          record.RoomCount,
		OpeningDaysPerYear: record.OpeningDaysPerYear,
		HasSpa:             record.HasSpa,
		HasRestaurant:      record.HasRestaurant,
		HasCongressCenter:  record.HasCongressCenter,
		StartYear:          record.StartYear,
		ProjectionYears:    record.ProjectionYears,
		InitialInvestment:  record.InitialInvestment,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

func MapDomainPlanToStore(plan domain.Plan) store.PlanRecord {
	return store.PlanRecord{
		ID:                 plan.ID,
		Name:               plan.Name,
		Currency:           plan.Currency,
		Stars:              plan.Stars,
		RoomCount:          plan.RoomCount,
		OpeningDaysPerYear: plan.OpeningDaysPerYear,
		HasSpa:             plan.HasSpa,
		HasRestaurant:      plan.HasRestaurant,
		HasCongressCenter:  plan.HasCongressCenter,
		StartYear:          plan.StartYear,
		ProjectionYears:    plan.ProjectionYears,
		InitialInvestment:  plan.InitialInvestment,
		CreatedAt:          plan.CreatedAt,
		UpdatedAt:          plan.UpdatedAt,
	}
}

func MapStoreYearToDomain(record store.YearAssumptionsRecord) domain.YearAssumptions {
	return domain.YearAssumptions{
		Year:                   record.Year,
		OccupancyRatePct:       record.OccupancyRatePct,
		AverageDailyRate:       record.AverageDailyRate,
		FBRevenuePct:           record.FBRevenuePct,
		SpaRevenuePct:          record.SpaRevenuePct,
		CongressRevenuePct:     record.CongressRevenuePct,
		OtherRevenuePct:        record.OtherRevenuePct,
		RoomCostPct:            record.RoomCostPct,
		FBCostPct:              record.FBCostPct,
		SpaCostPct:             record.SpaCostPct,
		CongressCostPct:        record.CongressCostPct,
		OTASharePct:            record.OTASharePct,
		OTACommissionPct:       record.OTACommissionPct,
		StaffCostMonthly:       record.StaffCostMonthly,
		RentCostMonthly:        record.RentCostMonthly,
		UtilitiesCostMonthly:   record.UtilitiesCostMonthly,
		MaintenanceCostMonthly: record.MaintenanceCostMonthly,
		InsuranceCostMonthly:   record.InsuranceCostMonthly,
		MarketingCostMonthly:   record.MarketingCostMonthly,
		AdminCostMonthly:       record.AdminCostMonthly,
		OtherFixedMonthly:      record.OtherFixedMonthly,
		InitialInvestment:      record.InitialInvestment,
		DepreciationYears:      record.DepreciationYears,
		LoanAmount:             record.LoanAmount,
		LoanInterestRatePct:    record.LoanInterestRatePct,
		TaxRatePct:             record.TaxRatePct,
	}
}

func MapDomainYearToStore(planID string, year domain.YearAssumptions) store.YearAssumptionsRecord {
	return store.YearAssumptionsRecord{
		PlanID:                 planID,
		Year:                   year.Year,
		OccupancyRatePct:       year.OccupancyRatePct,
		AverageDailyRate:       year.AverageDailyRate,
		FBRevenuePct:           year.FBRevenuePct,
		SpaRevenuePct:          year.SpaRevenuePct,
		CongressRevenuePct:     year.CongressRevenuePct,
		OtherRevenuePct:        year.OtherRevenuePct,
		RoomCostPct:            year.RoomCostPct,
		FBCostPct:              year.FBCostPct,
		SpaCostPct:             year.SpaCostPct,
		CongressCostPct:        year.CongressCostPct,
		OTASharePct:            year.OTASharePct,
		OTACommissionPct:       year.OTACommissionPct,
		StaffCostMonthly:       year.StaffCostMonthly,
		RentCostMonthly:        year.RentCostMonthly,
		UtilitiesCostMonthly:   year.UtilitiesCostMonthly,
		MaintenanceCostMonthly: year.MaintenanceCostMonthly,
		InsuranceCostMonthly:   year.InsuranceCostMonthly,
		MarketingCostMonthly:   year.MarketingCostMonthly,
		AdminCostMonthly:       year.AdminCostMonthly,
		OtherFixedMonthly:      year.OtherFixedMonthly,
		InitialInvestment:      year.InitialInvestment,
		DepreciationYears:      year.DepreciationYears,
		LoanAmount:             year.LoanAmount,
		LoanInterestRatePct:    year.LoanInterestRatePct,
		TaxRatePct:             year.TaxRatePct,
	}
}

func MapPlanDomainToApi(plan domain.Plan) api.Plan {
	return api.Plan{
		ID:                 plan.ID,
		Name:               plan.Name,
		Currency:           plan.Currency,
		Stars:              plan.Stars,
		RoomCount:          plan.RoomCount,
		OpeningDaysPerYear: plan.OpeningDaysPerYear,
		HasSpa:             plan.HasSpa,
		HasRestaurant:      plan.HasRestaurant,
		HasCongressCenter:  plan.HasCongressCenter,
		StartYear:          plan.StartYear,
		ProjectionYears:    plan.ProjectionYears,
		InitialInvestment:  plan.InitialInvestment,
		CreatedAt:          plan.CreatedAt,
		UpdatedAt:          plan.UpdatedAt,
	}
}

func MapPlanApiToDomain(plan api.Plan) domain.Plan {
	return domain.Plan{
		ID:                 plan.ID,
		Name:               plan.Name,
		Currency:           plan.Currency,
		Stars:              plan.Stars,
		RoomCount:          plan.RoomCount,
		OpeningDaysPerYear: plan.OpeningDaysPerYear,
		HasSpa:             plan.HasSpa,
		HasRestaurant:      plan.HasRestaurant,
		HasCongressCenter:  plan.HasCongressCenter,
		StartYear:          plan.StartYear,
		ProjectionYears:    plan.ProjectionYears,
		InitialInvestment:  plan.InitialInvestment,
	}
}

func MapYearApiToDomain(year api.YearAssumptions) domain.YearAssumptions {
	return domain.YearAssumptions{
		Year:                   year.Year,
		OccupancyRatePct:       year.OccupancyRatePct,
		AverageDailyRate:       year.AverageDailyRate,
		FBRevenuePct:           year.FBRevenuePct,
		SpaRevenuePct:          year.SpaRevenuePct,
		CongressRevenuePct:     year.CongressRevenuePct,
		OtherRevenuePct:        year.OtherRevenuePct,
		RoomCostPct:            year.RoomCostPct,
		FBCostPct:              year.FBCostPct,
		SpaCostPct:             year.SpaCostPct,
		CongressCostPct:        year.CongressCostPct,
		OTASharePct:            year.OTASharePct,
		OTACommissionPct:       year.OTACommissionPct,
		StaffCostMonthly:       year.StaffCostMonthly,
		RentCostMonthly:        year.RentCostMonthly,
		UtilitiesCostMonthly:   year.UtilitiesCostMonthly,
		MaintenanceCostMonthly: year.MaintenanceCostMonthly,
		InsuranceCostMonthly:   year.InsuranceCostMonthly,
		MarketingCostMonthly:   year.MarketingCostMonthly,
		AdminCostMonthly:       year.AdminCostMonthly,
		OtherFixedMonthly:      year.OtherFixedMonthly,
		InitialInvestment:      year.InitialInvestment,
		DepreciationYears:      year.DepreciationYears,
		LoanAmount:             year.LoanAmount,
		LoanInterestRatePct:    year.LoanInterestRatePct,
		TaxRatePct:             year.TaxRatePct,
	}
}

func MapYearDomainToApi(year domain.YearAssumptions) api.YearAssumptions {
	return api.YearAssumptions{
		Year:                   year.Year,
		OccupancyRatePct:       year.OccupancyRatePct,
		AverageDailyRate:       year.AverageDailyRate,
		FBRevenuePct:           year.FBRevenuePct,
		SpaRevenuePct:          year.SpaRevenuePct,
		CongressRevenuePct:     year.CongressRevenuePct,
		OtherRevenuePct:        year.OtherRevenuePct,
		RoomCostPct:            year.RoomCostPct,
		FBCostPct:              year.FBCostPct,
		SpaCostPct:             year.SpaCostPct,
		CongressCostPct:        year.CongressCostPct,
		OTASharePct:            year.OTASharePct,
		OTACommissionPct:       year.OTACommissionPct,
		StaffCostMonthly:       year.StaffCostMonthly,
		RentCostMonthly:        year.RentCostMonthly,
		UtilitiesCostMonthly:   year.UtilitiesCostMonthly,
		MaintenanceCostMonthly: year.MaintenanceCostMonthly,
		InsuranceCostMonthly:   year.InsuranceCostMonthly,
		MarketingCostMonthly:   year.MarketingCostMonthly,
		AdminCostMonthly:       year.AdminCostMonthly,
		OtherFixedMonthly:      year.OtherFixedMonthly,
		InitialInvestment:      year.InitialInvestment,
		DepreciationYears:      year.DepreciationYears,
		LoanAmount:             year.LoanAmount,
		LoanInterestRatePct:    year.LoanInterestRatePct,
		TaxRatePct:             year.TaxRatePct,
	}
}

func MapShareLinkStoreToDomain(record store.ShareLinkRecord) domain.ShareLink {
	return domain.ShareLink{
		Token:     record.Token,
		PlanID:    record.PlanID,
		CreatedAt: record.CreatedAt,
	}
}

func MapShareLinkDomainToApi(link domain.ShareLink) api.ShareLink {
	return api.ShareLink{
		Token:     link.Token,
		PlanID:    link.PlanID,
		CreatedAt: link.CreatedAt,
	}
}
