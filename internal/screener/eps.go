package screener

import (
	"strconv"
	"strings"
)

// EpsValue is a single reported EPS figure: the period label it was
// reported under and the raw currency-formatted string from the source
// table (e.g. "$1.23").
type EpsValue struct {
	Period string
	Raw    string
}

// EpsSeries is an ordered list of EPS figures as they appear in the
// source table, most-recent-first: index 0 is always the latest period.
// Growth calculations index by position, so this ordering is a contract
// of the type, not an accident of construction.
type EpsSeries []EpsValue

// Latest returns the most recent EPS value, or false if the series is empty.
func (s EpsSeries) Latest() (EpsValue, bool) {
	if len(s) == 0 {
		return EpsValue{}, false
	}
	return s[0], true
}

// RawValues returns the raw value strings in series order.
func (s EpsSeries) RawValues() []string {
	values := make([]string, len(s))
	for i, v := range s {
		values[i] = v.Raw
	}
	return values
}

// parseAmount converts a currency-formatted cell like "$1,234.56" to a
// float. Returns false for anything that doesn't parse as a number.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
