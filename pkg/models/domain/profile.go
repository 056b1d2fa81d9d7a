package domain

import "fmt"

// EngagementProfile identifies a client engagement configured in the
// consultant's profiles file.
type EngagementProfile struct {
	Name     string
	Currency string
	// DefaultTaxRatePct is the rate the editor pre-fills for new years.
	// The engine always takes the rate stored on the year itself.
	DefaultTaxRatePct float64
}

func (p EngagementProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Currency)
}
