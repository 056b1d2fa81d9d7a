package domain

// YearResult is the full projected P&L waterfall and KPI set for one year.
// It is always derived from (Plan, YearAssumptions) and never stored.
type YearResult struct {
	Year int

	// Capacity
	RoomNights          float64
	AvailableRoomNights float64

	// Revenue
	RoomRevenue     float64
	FBRevenue       float64
	SpaRevenue      float64
	CongressRevenue float64
	OtherRevenue    float64
	TotalRevenue    float64

	// Variable costs
	RoomCosts          float64
	FBCosts            float64
	SpaCosts           float64
	CongressCosts      float64
	OTACommissions     float64
	TotalVariableCosts float64

	ContributionMargin float64

	// Fixed costs, annualized
	StaffCost          float64
	RentCost           float64
	UtilitiesCost      float64
	MaintenanceCost    float64
	InsuranceCost      float64
	MarketingCost      float64
	AdminCost          float64
	OtherFixedCost     float64
	TotalFixedCosts    float64

	// Waterfall
	EBITDA          float64
	Depreciation    float64
	EBIT            float64
	InterestExpense float64
	EBT             float64
	Taxes           float64
	NetIncome       float64

	// KPIs. RevPAR is room revenue per available room-night; TotalRevPAR is
	// the total-revenue analogue.
	RevPAR      float64
	TotalRevPAR float64
	GOPPAR      float64
}

// YearOutcome pairs a projected year with either its result or the error that
// made it uncomputable. One invalid year never blocks the others.
type YearOutcome struct {
	Year   int
	Result *YearResult
	Err    error
}
