package stockanalysis

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"canslimscreener/internal/screener"
)

// RowLocator finds the canonical EPS row in a parsed financials page.
// The statements site gives no stable schema guarantees, so the markup
// heuristics live behind this interface and can be swapped per schema
// version without touching the growth or criteria logic.
type RowLocator interface {
	// Locate returns the target row, or nil when the page has no
	// usable row. A nil row is the expected "no data" outcome.
	Locate(doc *goquery.Document) *goquery.Selection
}

// LabelLocator matches the first row of the first table whose first
// cell contains Label. Rows with fewer than 3 cells are skipped as
// malformed. Only the first match counts: the full statement may carry
// several EPS-like rows, and the first one is the canonical figure in
// the site's layout.
type LabelLocator struct {
	Label string
}

// DefaultLocator matches the EPS row as the source site labels it today.
func DefaultLocator() RowLocator {
	return LabelLocator{Label: "EPS"}
}

// Locate implements RowLocator.
func (l LabelLocator) Locate(doc *goquery.Document) *goquery.Selection {
	var row *goquery.Selection
	doc.Find("table").First().Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return true
		}
		if strings.Contains(strings.TrimSpace(cells.First().Text()), l.Label) {
			row = tr
			return false
		}
		return true
	})
	return row
}

// ExtractEPS parses a financials page body and extracts the EPS row as
// an ordered series. Every cell after the row label maps to a synthetic
// period key "EPS {column}", preserving the table's left-to-right
// order, which is most-recent-first on the source site. A page with no
// table or no matching row yields an empty series, not an error.
func ExtractEPS(body string, locator RowLocator) (screener.EpsSeries, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse financials page: %w", err)
	}

	row := locator.Locate(doc)
	if row == nil {
		return screener.EpsSeries{}, nil
	}

	var series screener.EpsSeries
	row.Find("td").Each(func(i int, cell *goquery.Selection) {
		if i == 0 {
			return // row label
		}
		series = append(series, screener.EpsValue{
			Period: fmt.Sprintf("EPS %d", i),
			Raw:    strings.TrimSpace(cell.Text()),
		})
	})
	return series, nil
}
