package screener

import (
	"fmt"
	"strings"
)

// QuoteInfo carries the display fields from the quote lookup. The quote
// source is unreliable by contract, so callers pass safe defaults
// ("N/A", "$0") when it failed.
type QuoteInfo struct {
	Company   string
	Price     string
	MarketCap string
}

// Evaluator applies the CANSLIM EPS growth criteria.
//
// The two published variants of this screen disagree on whether a growth
// rate of exactly Threshold passes, so the comparison is configurable:
// Inclusive selects >= instead of the default strict >.
type Evaluator struct {
	Threshold float64
	Inclusive bool
}

// NewEvaluator returns an Evaluator with the standard 25% threshold and
// strict comparison.
func NewEvaluator() Evaluator {
	return Evaluator{Threshold: 25}
}

// exceeds reports whether a growth rate clears the threshold. An
// unknown rate never passes.
func (e Evaluator) exceeds(g GrowthRate) bool {
	if !g.Valid {
		return false
	}
	if e.Inclusive {
		return g.Value >= e.Threshold
	}
	return g.Value > e.Threshold
}

// Evaluate computes both growth rates and decides pass/fail. It always
// returns a result; missing data shows up as failed criteria, not as an
// error.
func (e Evaluator) Evaluate(ticker string, quote QuoteInfo, quarterly, annual EpsSeries) Result {
	qtrGrowth := QuarterlyGrowth(quarterly)
	annGrowth := AnnualGrowth(annual)

	qtrPass := e.exceeds(qtrGrowth)
	annPass := e.exceeds(annGrowth)
	passed := qtrPass && annPass

	var summary strings.Builder
	fmt.Fprintf(&summary, "Summary for %s:\n", ticker)
	summary.WriteString(e.criterionLine("quarterly", qtrGrowth, qtrPass))
	summary.WriteString(e.criterionLine("annual", annGrowth, annPass))
	summary.WriteString("\nCANSLIM Criteria:\n")
	if passed {
		summary.WriteString("This stock meets the CANSLIM criteria.\n")
	} else {
		summary.WriteString("This stock does not meet the CANSLIM criteria.\n")
	}

	return Result{
		Ticker:          ticker,
		Company:         quote.Company,
		Price:           quote.Price,
		MarketCap:       quote.MarketCap,
		QuarterlyGrowth: qtrGrowth,
		AnnualGrowth:    annGrowth,
		QuarterlyEPS:    quarterly,
		Passed:          passed,
		Summary:         summary.String(),
	}
}

// criterionLine renders one rationale line with the comparison operator
// the evaluator actually used.
func (e Evaluator) criterionLine(period string, g GrowthRate, pass bool) string {
	passOp, failOp := ">", "<="
	if e.Inclusive {
		passOp, failOp = ">=", "<"
	}
	if pass {
		return fmt.Sprintf("- Meets %s EPS growth criteria (%s %.0f%%): %s\n", period, passOp, e.Threshold, g)
	}
	return fmt.Sprintf("- Does not meet %s EPS growth criteria (%s %.0f%%): %s\n", period, failOp, e.Threshold, g)
}
