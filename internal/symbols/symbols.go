// Package symbols loads the newline-delimited ticker list file.
package symbols

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads ticker symbols from path, one per line. Lines are trimmed
// and uppercased; blank lines are skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols file: %w", err)
	}
	defer file.Close()

	var tickers []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		symbol := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if symbol == "" {
			continue
		}
		tickers = append(tickers, symbol)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read symbols file: %w", err)
	}
	return tickers, nil
}
