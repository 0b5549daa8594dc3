package quote

import (
	"fmt"
	"strings"
)

// FormatPrice renders a price as "$1,234.56".
func FormatPrice(price float64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}
	return sign + "$" + withThousands(fmt.Sprintf("%.2f", price))
}

// FormatMarketCap renders a market capitalization with a B/M/K suffix.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", cap/1_000_000_000)
	case cap >= 1_000_000:
		return fmt.Sprintf("$%.1fM", cap/1_000_000)
	case cap >= 1_000:
		return fmt.Sprintf("$%.1fK", cap/1_000)
	default:
		return fmt.Sprintf("$%g", cap)
	}
}

// withThousands inserts comma separators into the integer part of an
// already-formatted decimal string.
func withThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
