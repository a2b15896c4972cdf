package attendance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// FormatHoursToHoursMinutes renders decimal hours as "1h 30m", "2h" or "30m".
// Minutes are rounded half-up; 59.5 minutes and above carry into the next hour.
func FormatHoursToHoursMinutes(hours decimal.Decimal) string {
	totalMinutes := hours.Mul(sixty).Round(0).IntPart()
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	h, m := totalMinutes/60, totalMinutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
