package screener

import "fmt"

// GrowthRate is a signed percentage change between two EPS values at a
// fixed period offset. Valid is false when the series is too short, a
// value failed to parse, or the baseline is zero; "unknown" is never
// conflated with a computed zero.
type GrowthRate struct {
	Value float64
	Valid bool
}

// String renders the rate for display, "N/A" when unknown.
func (g GrowthRate) String() string {
	if !g.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", g.Value)
}

// QuarterlyGrowth computes the percentage change from the previous
// quarter (index 1) to the latest quarter (index 0). Requires at least
// two values.
func QuarterlyGrowth(series EpsSeries) GrowthRate {
	return growthAtOffset(series, 1)
}

// AnnualGrowth computes the percentage change from three fiscal years
// back (index 2) to the latest year (index 0). Requires at least three
// values.
func AnnualGrowth(series EpsSeries) GrowthRate {
	return growthAtOffset(series, 2)
}

// growthAtOffset compares the latest value against the baseline at the
// given position: (latest - baseline) / baseline * 100, signed, no
// clamping.
func growthAtOffset(series EpsSeries, offset int) GrowthRate {
	if len(series) < offset+1 {
		return GrowthRate{}
	}
	latest, ok := parseAmount(series[0].Raw)
	if !ok {
		return GrowthRate{}
	}
	baseline, ok := parseAmount(series[offset].Raw)
	if !ok {
		return GrowthRate{}
	}
	if baseline == 0 {
		// Division by zero: growth is undefined, not an error.
		return GrowthRate{}
	}
	return GrowthRate{
		Value: (latest - baseline) / baseline * 100,
		Valid: true,
	}
}
