package plan

import (
	"fmt"

	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/spf13/viper"
)

// Document is the on-disk form of a business plan used by the CLI: one plan
// block plus one entry per projected year.
type Document struct {
	Plan  PlanDocument   `mapstructure:"plan"`
	Years []YearDocument `mapstructure:"years"`
}

type PlanDocument struct {
	Name               string  `mapstructure:"name"`
	Currency           string  `mapstructure:"currency"`
	Stars              int     `mapstructure:"stars"`
	RoomCount          int     `mapstructure:"room_count"`
	OpeningDaysPerYear int     `mapstructure:"opening_days_per_year"`
	HasSpa             bool    `mapstructure:"has_spa"`
	HasRestaurant      bool    `mapstructure:"has_restaurant"`
	HasCongressCenter  bool    `mapstructure:"has_congress_center"`
	StartYear          int     `mapstructure:"start_year"`
	ProjectionYears    int     `mapstructure:"projection_years"`
	InitialInvestment  float64 `mapstructure:"initial_investment"`
}

type YearDocument struct {
	Year int `mapstructure:"year"`

	OccupancyRatePct   float64 `mapstructure:"occupancy_rate_pct"`
	AverageDailyRate   float64 `mapstructure:"average_daily_rate"`
	FBRevenuePct       float64 `mapstructure:"fb_revenue_pct"`
	SpaRevenuePct      float64 `mapstructure:"spa_revenue_pct"`
	CongressRevenuePct float64 `mapstructure:"congress_revenue_pct"`
	OtherRevenuePct    float64 `mapstructure:"other_revenue_pct"`

	RoomCostPct      float64 `mapstructure:"room_cost_pct"`
	FBCostPct        float64 `mapstructure:"fb_cost_pct"`
	SpaCostPct       float64 `mapstructure:"spa_cost_pct"`
	CongressCostPct  float64 `mapstructure:"congress_cost_pct"`
	OTASharePct      float64 `mapstructure:"ota_share_pct"`
	OTACommissionPct float64 `mapstructure:"ota_commission_pct"`

	StaffCostMonthly       float64 `mapstructure:"staff_cost_monthly"`
	RentCostMonthly        float64 `mapstructure:"rent_cost_monthly"`
	UtilitiesCostMonthly   float64 `mapstructure:"utilities_cost_monthly"`
	MaintenanceCostMonthly float64 `mapstructure:"maintenance_cost_monthly"`
	InsuranceCostMonthly   float64 `mapstructure:"insurance_cost_monthly"`
	MarketingCostMonthly   float64 `mapstructure:"marketing_cost_monthly"`
	AdminCostMonthly       float64 `mapstructure:"admin_cost_monthly"`
	OtherFixedMonthly      float64 `mapstructure:"other_fixed_monthly"`

	InitialInvestment   float64 `mapstructure:"initial_investment"`
	DepreciationYears   int     `mapstructure:"depreciation_years"`
	LoanAmount          float64 `mapstructure:"loan_amount"`
	LoanInterestRatePct float64 `mapstructure:"loan_interest_rate_pct"`
	TaxRatePct          float64 `mapstructure:"tax_rate_pct"`
}

// LoadDocument reads a plan file (YAML, or anything viper understands from
// the extension) and maps it to domain inputs for the engine.
func LoadDocument(path string) (domain.Plan, []domain.YearAssumptions, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return domain.Plan{}, nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return domain.Plan{}, nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	plan := domain.Plan{
		Name:               doc.Plan.Name,
		Currency:           doc.Plan.Currency,
		Stars:              doc.Plan.Stars,
		RoomCount:          doc.Plan.RoomCount,
		OpeningDaysPerYear: doc.Plan.OpeningDaysPerYear,
		HasSpa:             doc.Plan.HasSpa,
		HasRestaurant:      doc.Plan.HasRestaurant,
		HasCongressCenter:  doc.Plan.HasCongressCenter,
		StartYear:          doc.Plan.StartYear,
		ProjectionYears:    doc.Plan.ProjectionYears,
		InitialInvestment:  doc.Plan.InitialInvestment,
	}
	if plan.Currency == "" {
		plan.Currency = "EUR"
	}

	years := make([]domain.YearAssumptions, 0, len(doc.Years))
	for _, y := range doc.Years {
		investment := y.InitialInvestment
		if investment == 0 {
			investment = plan.InitialInvestment
		}
		years = append(years, domain.YearAssumptions{
			Year:                   y.Year,
			OccupancyRatePct:       y.OccupancyRatePct,
			AverageDailyRate:       y.AverageDailyRate,
			FBRevenuePct:           y.FBRevenuePct,
			SpaRevenuePct:          y.SpaRevenuePct,
			CongressRevenuePct:     y.CongressRevenuePct,
			OtherRevenuePct:        y.OtherRevenuePct,
			RoomCostPct:            y.RoomCostPct,
			FBCostPct:              y.FBCostPct,
			SpaCostPct:             y.SpaCostPct,
			CongressCostPct:        y.CongressCostPct,
			OTASharePct:            y.OTASharePct,
			OTACommissionPct:       y.OTACommissionPct,
			StaffCostMonthly:       y.StaffCostMonthly,
			RentCostMonthly:        y.RentCostMonthly,
			UtilitiesCostMonthly:   y.UtilitiesCostMonthly,
			MaintenanceCostMonthly: y.MaintenanceCostMonthly,
			InsuranceCostMonthly:   y.InsuranceCostMonthly,
			MarketingCostMonthly:   y.MarketingCostMonthly,
			AdminCostMonthly:       y.AdminCostMonthly,
			OtherFixedMonthly:      y.OtherFixedMonthly,
			InitialInvestment:      investment,
			DepreciationYears:      y.DepreciationYears,
			LoanAmount:             y.LoanAmount,
			LoanInterestRatePct:    y.LoanInterestRatePct,
			TaxRatePct:             y.TaxRatePct,
		})
	}

	return plan, years, nil
}
