package projection

import "github.com/revlytic/bplan/pkg/models/domain"

// applyKPIs fills in the per-available-room indicators. RevPAR divides room
// revenue by available room nights (textbook definition); TotalRevPAR is the
// total-revenue analogue; GOPPAR divides EBITDA the same way.
func applyKPIs(result *domain.YearResult) error {
	if result.AvailableRoomNights <= 0 {
		return divisionByZerof("available room nights %.0f must be positive for RevPAR/GOPPAR",
			result.AvailableRoomNights)
	}

	result.RevPAR = result.RoomRevenue / result.AvailableRoomNights
	result.TotalRevPAR = result.TotalRevenue / result.AvailableRoomNights
	result.GOPPAR = result.EBITDA / result.AvailableRoomNights
	return nil
}
