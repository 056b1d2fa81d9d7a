package adapters

import (
	"errors"

	"github.com/revlytic/bplan/pkg/models/api"
	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/revlytic/bplan/pkg/services/projection"
)

const (
	ErrorKindInvalidInput   = "invalid_input"
	ErrorKindDivisionByZero = "division_by_zero"
	ErrorKindInternal       = "internal"
)

func MapYearResultDomainToApi(result domain.YearResult) api.YearResult {
	return api.YearResult{
		Year: result.Year,

		RoomNights:          result.RoomNights,
		AvailableRoomNights: result.AvailableRoomNights,

		RoomRevenue:     result.RoomRevenue,
		FBRevenue:       result.FBRevenue,
		SpaRevenue:      result.SpaRevenue,
		CongressRevenue: result.CongressRevenue,
		OtherRevenue:    result.OtherRevenue,
		TotalRevenue:    result.TotalRevenue,

		RoomCosts:          result.RoomCosts,
		FBCosts:            result.FBCosts,
		SpaCosts:           result.SpaCosts,
		CongressCosts:      result.CongressCosts,
		OTACommissions:     result.OTACommissions,
		TotalVariableCosts: result.TotalVariableCosts,

		ContributionMargin: result.ContributionMargin,

		StaffCost:       result.StaffCost,
		RentCost:        result.RentCost,
		UtilitiesCost:   result.UtilitiesCost,
		MaintenanceCost: result.MaintenanceCost,
		InsuranceCost:   result.InsuranceCost,
		MarketingCost:   result.MarketingCost,
		AdminCost:       result.AdminCost,
		OtherFixedCost:  result.OtherFixedCost,
		TotalFixedCosts: result.TotalFixedCosts,

		EBITDA:          result.EBITDA,
		Depreciation:    result.Depreciation,
		EBIT:            result.EBIT,
		InterestExpense: result.InterestExpense,
		EBT:             result.EBT,
		Taxes:           result.Taxes,
		NetIncome:       result.NetIncome,

		RevPAR:      result.RevPAR,
		TotalRevPAR: result.TotalRevPAR,
		GOPPAR:      result.GOPPAR,
	}
}

// MapProjectionErrorKind classifies an engine error for API consumers.
// Division-by-zero is matched before the general invalid-input kind because
// it wraps it.
func MapProjectionErrorKind(err error) string {
	switch {
	case errors.Is(err, projection.ErrDivisionByZero):
		return ErrorKindDivisionByZero
	case errors.Is(err, projection.ErrInvalidInput):
		return ErrorKindInvalidInput
	default:
		return ErrorKindInternal
	}
}

func MapYearOutcomeDomainToApi(outcome domain.YearOutcome) api.YearOutcome {
	out := api.YearOutcome{Year: outcome.Year}
	if outcome.Err != nil {
		out.Error = outcome.Err.Error()
		out.ErrorKind = MapProjectionErrorKind(outcome.Err)
		return out
	}
	if outcome.Result != nil {
		result := MapYearResultDomainToApi(*outcome.Result)
		out.Result = &result
	}
	return out
}

func MapYearOutcomesDomainToApi(outcomes []domain.YearOutcome) []api.YearOutcome {
	mapped := make([]api.YearOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		mapped = append(mapped, MapYearOutcomeDomainToApi(o))
	}
	return mapped
}
