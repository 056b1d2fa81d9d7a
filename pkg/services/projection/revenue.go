package projection

import "github.com/revlytic/bplan/pkg/models/domain"

type revenueLines struct {
	roomNights      float64
	availableNights float64
	room            float64
	fb              float64
	spa             float64
	congress        float64
	other           float64
	total           float64
}

// computeRevenue derives room nights and every revenue stream for one year.
// Ancillary streams are a percentage of room revenue; a stream whose facility
// flag is off is exactly zero, even when a nonzero percentage is configured.
func computeRevenue(plan domain.Plan, year domain.YearAssumptions) revenueLines {
	available := float64(plan.RoomCount) * float64(plan.OpeningDaysPerYear)
	roomNights := available * year.OccupancyRatePct / 100
	roomRevenue := roomNights * year.AverageDailyRate

	var fb, spa, congress float64
	if plan.HasRestaurant {
		fb = roomRevenue * year.FBRevenuePct / 100
	}
	if plan.HasSpa {
		spa = roomRevenue * year.SpaRevenuePct / 100
	}
	if plan.HasCongressCenter {
		congress = roomRevenue * year.CongressRevenuePct / 100
	}
	other := roomRevenue * year.OtherRevenuePct / 100

	return revenueLines{
		roomNights:      roomNights,
		availableNights: available,
		room:            roomRevenue,
		fb:              fb,
		spa:             spa,
		congress:        congress,
		other:           other,
		total:           roomRevenue + fb + spa + congress + other,
	}
}
