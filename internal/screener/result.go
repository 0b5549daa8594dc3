package screener

// Result is the per-ticker screening outcome. Built once by the
// Evaluator and immutable after that: either appended to the accepted
// set or discarded.
type Result struct {
	Ticker    string
	Company   string
	Price     string // formatted, "N/A" when the quote lookup failed
	MarketCap string // formatted, "$0" when the quote lookup failed

	QuarterlyGrowth GrowthRate
	AnnualGrowth    GrowthRate

	// QuarterlyEPS is the raw extracted series backing QuarterlyGrowth,
	// kept for report output.
	QuarterlyEPS EpsSeries

	Passed  bool
	Summary string
}
