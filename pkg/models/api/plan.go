package api

import "time"

type Plan struct {
	ID                 string    `json:"id,omitempty"`
	Name               string    `json:"name"`
	Currency           string    `json:"currency"`
	Stars              int       `json:"stars,omitempty"`
	RoomCount          int       `json:"room_count"`
	OpeningDaysPerYear int       `json:"opening_days_per_year"`
	HasSpa             bool      `json:"has_spa"`
	HasRestaurant      bool      `json:"has_restaurant"`
	HasCongressCenter  bool      `json:"has_congress_center"`
	StartYear          int       `json:"start_year"`
	ProjectionYears    int       `json:"projection_years"`
	InitialInvestment  float64   `json:"initial_investment"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
	UpdatedAt          time.Time `json:"updated_at,omitempty"`
}

type YearAssumptions struct {
	Year int `json:"year"`

	OccupancyRatePct   float64 `json:"occupancy_rate_pct"`
	AverageDailyRate   float64 `json:"average_daily_rate"`
	FBRevenuePct       float64 `json:"fb_revenue_pct"`
	SpaRevenuePct      float64 `json:"spa_revenue_pct"`
	CongressRevenuePct float64 `json:"congress_revenue_pct"`
	OtherRevenuePct    float64 `json:"other_revenue_pct"`

	RoomCostPct      float64 `json:"room_cost_pct"`
	FBCostPct        float64 `json:"fb_cost_pct"`
	SpaCostPct       float64 `json:"spa_cost_pct"`
	CongressCostPct  float64 `json:"congress_cost_pct"`
	OTASharePct      float64 `json:"ota_share_pct"`
	OTACommissionPct float64 `json:"ota_commission_pct"`

	StaffCostMonthly       float64 `json:"staff_cost_monthly"`
	RentCostMonthly        float64 `json:"rent_cost_monthly"`
	UtilitiesCostMonthly   float64 `json:"utilities_cost_monthly"`
	MaintenanceCostMonthly float64 `json:"maintenance_cost_monthly"`
	InsuranceCostMonthly   float64 `json:"insurance_cost_monthly"`
	MarketingCostMonthly   float64 `json:"marketing_cost_monthly"`
	AdminCostMonthly       float64 `json:"admin_cost_monthly"`
	OtherFixedMonthly      float64 `json:"other_fixed_monthly"`

	InitialInvestment   float64 `json:"initial_investment"`
	DepreciationYears   int     `json:"depreciation_years"`
	LoanAmount          float64 `json:"loan_amount"`
	LoanInterestRatePct float64 `json:"loan_interest_rate_pct"`
	TaxRatePct          float64 `json:"tax_rate_pct"`
}

type YearResult struct {
	Year int `json:"year"`

	RoomNights          float64 `json:"room_nights"`
	AvailableRoomNights float64 `json:"available_room_nights"`

	RoomRevenue     float64 `json:"room_revenue"`
	FBRevenue       float64 `json:"fb_revenue"`
	SpaRevenue      float64 `json:"spa_revenue"`
	CongressRevenue float64 `json:"congress_revenue"`
	OtherRevenue    float64 `json:"other_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`

	RoomCosts          float64 `json:"room_costs"`
	FBCosts            float64 `json:"fb_costs"`
	SpaCosts           float64 `json:"spa_costs"`
	CongressCosts      float64 `json:"congress_costs"`
	OTACommissions     float64 `json:"ota_commissions"`
	TotalVariableCosts float64 `json:"total_variable_costs"`

	ContributionMargin float64 `json:"contribution_margin"`

	StaffCost       float64 `json:"staff_cost"`
	RentCost        float64 `json:"rent_cost"`
	UtilitiesCost   float64 `json:"utilities_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	InsuranceCost   float64 `json:"insurance_cost"`
	MarketingCost   float64 `json:"marketing_cost"`
	AdminCost       float64 `json:"admin_cost"`
	OtherFixedCost  float64 `json:"other_fixed_cost"`
	TotalFixedCosts float64 `json:"total_fixed_costs"`

	EBITDA          float64 `json:"ebitda"`
	Depreciation    float64 `json:"depreciation"`
	EBIT            float64 `json:"ebit"`
	InterestExpense float64 `json:"interest_expense"`
	EBT             float64 `json:"ebt"`
	Taxes           float64 `json:"taxes"`
	NetIncome       float64 `json:"net_income"`

	RevPAR      float64 `json:"revpar"`
	TotalRevPAR float64 `json:"total_revpar"`
	GOPPAR      float64 `json:"goppar"`
}

// YearOutcome carries either the projected figures for a year or the reason
// they could not be computed, so one bad year renders as its own row.
type YearOutcome struct {
	Year      int         `json:"year"`
	Result    *YearResult `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
}

type ProjectionPreviewRequest struct {
	Plan Plan            `json:"plan"`
	Year YearAssumptions `json:"year"`
}

// SharedProjection is the read-only view returned for a share token.
type SharedProjection struct {
	Plan  Plan          `json:"plan"`
	Years []YearOutcome `json:"years"`
}

type ShareLink struct {
	Token     string    `json:"token"`
	PlanID    string    `json:"plan_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Error struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
