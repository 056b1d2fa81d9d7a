package report

import (
	"fmt"

	"github.com/revlytic/bplan/pkg/models/domain"
)

// Build assembles the renderer-facing report for a projected plan. Every
// consumer renders from this structure, so the figures are taken verbatim
// from the engine outcomes.
func Build(plan domain.Plan, outcomes []domain.YearOutcome) domain.Report {
	report := domain.Report{
		Title:    fmt.Sprintf("Business Plan: %s", plan.Name),
		Currency: plan.Currency,
	}

	if len(outcomes) > 0 {
		report.Period = domain.ProjectionPeriod{
			StartYear: outcomes[0].Year,
			EndYear:   outcomes[len(outcomes)-1].Year,
			Years:     len(outcomes),
		}
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			report.Sections = append(report.Sections, domain.ReportSection{
				Title: fmt.Sprintf("Year %d", outcome.Year),
				Year:  outcome.Year,
				Err:   fmt.Sprintf("incomplete data for year %d: %v", outcome.Year, outcome.Err),
			})
			continue
		}

		report.TotalNetIncome += outcome.Result.NetIncome
		report.Sections = append(report.Sections, buildYearSection(plan, *outcome.Result))
	}

	return report
}

func buildYearSection(plan domain.Plan, result domain.YearResult) domain.ReportSection {
	currency := plan.Currency

	return domain.ReportSection{
		Title: fmt.Sprintf("Year %d", result.Year),
		Year:  result.Year,
		Summary: map[string]interface{}{
			"Total Revenue": result.TotalRevenue,
			"EBITDA":        result.EBITDA,
			"Net Income":    result.NetIncome,
			"RevPAR":        result.RevPAR,
			"GOPPAR":        result.GOPPAR,
		},
		Details: []domain.ReportDetail{
			{
				Name:        "Occupied Room Nights",
				Value:       result.RoomNights,
				Unit:        "nights",
				Description: fmt.Sprintf("Of %.0f available room nights", result.AvailableRoomNights),
			},
			{
				Name:        "Room Revenue",
				Value:       result.RoomRevenue,
				Unit:        currency,
				Description: "Occupied room nights at the average daily rate",
			},
			{
				Name:        "F&B Revenue",
				Value:       result.FBRevenue,
				Unit:        currency,
				Description: "Food and beverage revenue",
			},
			{
				Name:        "Spa Revenue",
				Value:       result.SpaRevenue,
				Unit:        currency,
				Description: "Spa and wellness revenue",
			},
			{
				Name:        "Congress Revenue",
				Value:       result.CongressRevenue,
				Unit:        currency,
				Description: "Congress and events revenue",
			},
			{
				Name:        "Other Revenue",
				Value:       result.OtherRevenue,
				Unit:        currency,
				Description: "Parking, minibar and other ancillary revenue",
			},
			{
				Name:        "Total Revenue",
				Value:       result.TotalRevenue,
				Unit:        currency,
				Description: "All revenue streams for the year",
			},
			{
				Name:        "Variable Costs",
				Value:       result.TotalVariableCosts,
				Unit:        currency,
				Description: "Operating costs that scale with revenue, including OTA commissions",
			},
			{
				Name:        "Contribution Margin",
				Value:       result.ContributionMargin,
				Unit:        currency,
				Description: "Total revenue less variable costs",
			},
			{
				Name:        "Fixed Costs",
				Value:       result.TotalFixedCosts,
				Unit:        currency,
				Description: "Annualized staff, rent, utilities and other fixed costs",
			},
			{
				Name:        "EBITDA",
				Value:       result.EBITDA,
				Unit:        currency,
				Description: "Contribution margin less fixed costs",
			},
			{
				Name:        "Depreciation",
				Value:       result.Depreciation,
				Unit:        currency,
				Description: "Straight-line depreciation of the initial investment",
			},
			{
				Name:        "EBIT",
				Value:       result.EBIT,
				Unit:        currency,
				Description: "Earnings before interest and taxes",
			},
			{
				Name:        "Interest Expense",
				Value:       result.InterestExpense,
				Unit:        currency,
				Description: "Annual interest on the outstanding loan",
			},
			{
				Name:        "EBT",
				Value:       result.EBT,
				Unit:        currency,
				Description: "Earnings before taxes",
			},
			{
				Name:        "Taxes",
				Value:       result.Taxes,
				Unit:        currency,
				Description: "Income taxes, zero when EBT is not positive",
			},
			{
				Name:        "Net Income",
				Value:       result.NetIncome,
				Unit:        currency,
				Description: "Bottom line for the year",
			},
			{
				Name:        "RevPAR",
				Value:       result.RevPAR,
				Unit:        currency,
				Description: "Room revenue per available room night",
			},
			{
				Name:        "TRevPAR",
				Value:       result.TotalRevPAR,
				Unit:        currency,
				Description: "Total revenue per available room night",
			},
			{
				Name:        "GOPPAR",
				Value:       result.GOPPAR,
				Unit:        currency,
				Description: "EBITDA per available room night",
			},
		},
	}
}
