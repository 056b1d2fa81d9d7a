package domain

import "time"

// Plan holds the static facts of a hotel business plan. Everything that can
// change from one projected year to the next lives in YearAssumptions instead.
type Plan struct {
	ID                 string
	Name               string
	Currency           string // ISO 4217, e.g. EUR
	Stars              int
	RoomCount          int
	OpeningDaysPerYear int
	HasSpa             bool
	HasRestaurant      bool
	HasCongressCenter  bool
	StartYear          int
	ProjectionYears    int
	// InitialInvestment is the editor-side default seeded into new years.
	// The engine reads the per-year figure on YearAssumptions only.
	InitialInvestment float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// YearAssumptions carries the operating and capital drivers for one projected
// calendar year. All percentage fields are expressed in [0, 100].
type YearAssumptions struct {
	Year int

	// Revenue drivers. Ancillary streams are a percentage of room revenue,
	// gated by the corresponding facility flag on the plan.
	OccupancyRatePct   float64
	AverageDailyRate   float64
	FBRevenuePct       float64
	SpaRevenuePct      float64
	CongressRevenuePct float64
	OtherRevenuePct    float64

	// Variable cost drivers, each a percentage of its stream's revenue.
	// OTA commission applies to the OTA-attributed share of room revenue.
	RoomCostPct      float64
	FBCostPct        float64
	SpaCostPct       float64
	CongressCostPct  float64
	OTASharePct      float64
	OTACommissionPct float64

	// Fixed monthly costs.
	StaffCostMonthly       float64
	RentCostMonthly        float64
	UtilitiesCostMonthly   float64
	MaintenanceCostMonthly float64
	InsuranceCostMonthly   float64
	MarketingCostMonthly   float64
	AdminCostMonthly       float64
	OtherFixedMonthly      float64

	// Capital drivers.
	InitialInvestment   float64
	DepreciationYears   int
	LoanAmount          float64
	LoanInterestRatePct float64
	TaxRatePct          float64
}

// ShareLink grants read-only access to a plan's projection.
type ShareLink struct {
	Token     string
	PlanID    string
	CreatedAt time.Time
}
