// Package report renders screening results: the console table of
// accepted tickers and the per-run text report in interactive mode.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"canslimscreener/internal/screener"
)

// maxEPSColumns bounds how many raw EPS fields the table shows per row.
const maxEPSColumns = 4

// RenderTable writes the results as a fixed-width console table.
func RenderTable(w io.Writer, results []screener.Result) {
	renderTable(w, results, true)
}

// WriteFile writes a single-ticker report to dir, named
// <TICKER>_<YYYYMMDD_HHMMSS>.txt: the summary text followed by the
// tabular fields minus price. Returns the path written.
func WriteFile(dir string, result screener.Result, now time.Time) (string, error) {
	name := fmt.Sprintf("%s_%s.txt", result.Ticker, now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	var b strings.Builder
	b.WriteString(result.Summary)
	b.WriteString("\n")
	renderTable(&b, []screener.Result{result}, false)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

// WriteUnavailable writes the per-run report file for a ticker that
// produced no result, so interactive runs always leave a file behind.
func WriteUnavailable(dir, ticker string, now time.Time) (string, error) {
	name := fmt.Sprintf("%s_%s.txt", ticker, now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("No stocks met the criteria.\n"), 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

func renderTable(w io.Writer, results []screener.Result, withPrice bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No stocks met the criteria.")
		return
	}

	cols := []struct {
		header string
		width  int
	}{
		{"Ticker", 8},
		{"Company", 24},
		{"Price", 12},
		{"Mkt Cap", 10},
		{"Qtr EPS %", 10},
		{"Ann EPS %", 10},
	}

	total := 0
	for _, c := range cols {
		if !withPrice && c.header == "Price" {
			continue
		}
		fmt.Fprintf(w, "%-*s ", c.width, c.header)
		total += c.width + 1
	}
	for i := 1; i <= maxEPSColumns; i++ {
		fmt.Fprintf(w, "%-9s ", fmt.Sprintf("EPS %d", i))
		total += 10
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", total))

	for _, r := range results {
		fmt.Fprintf(w, "%-8s %-24s ", r.Ticker, truncate(r.Company, 24))
		if withPrice {
			fmt.Fprintf(w, "%-12s ", r.Price)
		}
		fmt.Fprintf(w, "%-10s %-10s %-10s ", r.MarketCap, r.QuarterlyGrowth, r.AnnualGrowth)
		for i := 0; i < maxEPSColumns; i++ {
			cell := ""
			if i < len(r.QuarterlyEPS) {
				cell = r.QuarterlyEPS[i].Raw
			}
			fmt.Fprintf(w, "%-9s ", cell)
		}
		fmt.Fprintln(w)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
