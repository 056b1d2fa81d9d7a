package domain

// Report is the renderer-facing view of a projected plan. Console, export and
// HTTP consumers all receive the same report built from the same engine run.
type Report struct {
	Title    string
	Period   ProjectionPeriod
	Currency string
	Sections []ReportSection
	// TotalNetIncome sums net income across the computable years.
	TotalNetIncome float64
}

// ProjectionPeriod is the span of projected calendar years.
type ProjectionPeriod struct {
	StartYear int
	EndYear   int
	Years     int
}

// ReportSection holds one projected year, or the error that made it
// uncomputable.
type ReportSection struct {
	Title   string
	Year    int
	Err     string // non-empty when the year could not be computed
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail is a single labelled figure within a section.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
