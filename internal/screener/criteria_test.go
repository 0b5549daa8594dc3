package screener

import (
	"strings"
	"testing"
)

func TestEvaluate_PassAndFail(t *testing.T) {
	quote := QuoteInfo{Company: "Test Corp", Price: "$100.00", MarketCap: "$1.5B"}

	tests := []struct {
		name      string
		quarterly EpsSeries
		annual    EpsSeries
		wantPass  bool
	}{
		{
			// 30% quarterly, 40% annual: both clear 25%.
			name:      "both criteria met",
			quarterly: series("$1.30", "$1.00"),
			annual:    series("$1.40", "$1.20", "$1.00"),
			wantPass:  true,
		},
		{
			// 20% quarterly fails regardless of annual growth.
			name:      "quarterly below threshold",
			quarterly: series("$1.20", "$1.00"),
			annual:    series("$2.00", "$1.50", "$1.00"),
			wantPass:  false,
		},
		{
			name:      "annual below threshold",
			quarterly: series("$1.50", "$1.00"),
			annual:    series("$1.10", "$1.05", "$1.00"),
			wantPass:  false,
		},
		{
			// Unknown growth fails the corresponding criterion.
			name:      "missing annual data",
			quarterly: series("$1.50", "$1.00"),
			annual:    series("$1.50", "$1.00"),
			wantPass:  false,
		},
		{
			name:      "empty series",
			quarterly: series(),
			annual:    series(),
			wantPass:  false,
		},
	}

	eval := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eval.Evaluate("TEST", quote, tt.quarterly, tt.annual)
			if result.Passed != tt.wantPass {
				t.Errorf("Evaluate() passed = %v, want %v\nsummary:\n%s", result.Passed, tt.wantPass, result.Summary)
			}
			if result.Ticker != "TEST" {
				t.Errorf("Ticker = %q, want %q", result.Ticker, "TEST")
			}
			if result.Company != quote.Company {
				t.Errorf("Company = %q, want %q", result.Company, quote.Company)
			}
		})
	}
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	// Exactly 25% on both: strict comparison fails, inclusive passes.
	quarterly := series("$1.25", "$1.00")
	annual := series("$1.25", "$1.10", "$1.00")
	quote := QuoteInfo{Company: "Edge Inc", Price: "$10.00", MarketCap: "$500.0M"}

	strict := Evaluator{Threshold: 25}
	if got := strict.Evaluate("EDGE", quote, quarterly, annual); got.Passed {
		t.Error("strict Evaluate() passed at exactly 25%, want fail")
	}

	inclusive := Evaluator{Threshold: 25, Inclusive: true}
	if got := inclusive.Evaluate("EDGE", quote, quarterly, annual); !got.Passed {
		t.Error("inclusive Evaluate() failed at exactly 25%, want pass")
	}
}

func TestEvaluate_Summary(t *testing.T) {
	eval := NewEvaluator()
	quote := QuoteInfo{Company: "Test Corp", Price: "N/A", MarketCap: "$0"}

	result := eval.Evaluate("AAPL", quote, series("$1.50", "$1.00"), series())

	wantLines := []string{
		"Summary for AAPL:",
		"- Meets quarterly EPS growth criteria (> 25%): 50.00%",
		"- Does not meet annual EPS growth criteria (<= 25%): N/A",
		"This stock does not meet the CANSLIM criteria.",
	}
	for _, line := range wantLines {
		if !strings.Contains(result.Summary, line) {
			t.Errorf("summary missing line %q\ngot:\n%s", line, result.Summary)
		}
	}
}

func TestEvaluate_QuoteFailureDefaults(t *testing.T) {
	// A failed quote lookup degrades to safe display defaults; the
	// ticker still screens on EPS growth alone.
	eval := NewEvaluator()
	quote := QuoteInfo{Company: "N/A", Price: "N/A", MarketCap: "$0"}

	result := eval.Evaluate("NOQUOTE", quote, series("$1.30", "$1.00"), series("$1.40", "$1.20", "$1.00"))
	if !result.Passed {
		t.Error("Evaluate() failed a ticker with passing growth because the quote was missing")
	}
	if result.Price != "N/A" || result.MarketCap != "$0" {
		t.Errorf("display fields = (%q, %q), want (N/A, $0)", result.Price, result.MarketCap)
	}
}
