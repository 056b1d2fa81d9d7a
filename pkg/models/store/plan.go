package store

import "time"

type PlanRecord struct {
	ID                 string
	Name               string
	Currency           string
	Stars              int
	RoomCount          int
	OpeningDaysPerYear int
	HasSpa             bool
	HasRestaurant      bool
	HasCongressCenter  bool
	StartYear          int
	ProjectionYears    int
	InitialInvestment  float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type YearAssumptionsRecord struct {
	PlanID string
	Year   int

	OccupancyRatePct   float64
	AverageDailyRate   float64
	FBRevenuePct       float64
	SpaRevenuePct      float64
	CongressRevenuePct float64
	OtherRevenuePct    float64

	RoomCostPct      float64
	FBCostPct        float64
	SpaCostPct       float64
	CongressCostPct  float64
	OTASharePct      float64
	OTACommissionPct float64

	StaffCostMonthly       float64
	RentCostMonthly        float64
	UtilitiesCostMonthly   float64
	MaintenanceCostMonthly float64
	InsuranceCostMonthly   float64
	MarketingCostMonthly   float64
	AdminCostMonthly       float64
	OtherFixedMonthly      float64

	InitialInvestment   float64
	DepreciationYears   int
	LoanAmount          float64
	LoanInterestRatePct float64
	TaxRatePct          float64
}

type ShareLinkRecord struct {
	Token     string
	PlanID    string
	CreatedAt time.Time
}
