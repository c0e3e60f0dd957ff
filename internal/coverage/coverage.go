// Package coverage reads the total from pytest-cov terminal reports.
package coverage

import (
	"bufio"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseTotal returns the percentage on the last TOTAL row of a pytest-cov
// report, e.g. "TOTAL   120   12   90%" or "TOTAL 120 12 90.25%".
func ParseTotal(output string) (decimal.Decimal, bool) {
	var (
		total decimal.Decimal
		found bool
	)

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "TOTAL" {
			continue
		}
		last := fields[len(fields)-1]
		if !strings.HasSuffix(last, "%") {
			continue
		}
		pct, err := decimal.NewFromString(strings.TrimSuffix(last, "%"))
		if err != nil {
			continue
		}
		total, found = pct, true
	}
	return total, found
}

// MeetsMinimum reports whether total is at least min percent.
func MeetsMinimum(total decimal.Decimal, min int) bool {
	return total.GreaterThanOrEqual(decimal.NewFromInt(int64(min)))
}

// Format renders a percentage with at most two decimals, e.g. "85%" or "85.25%".
func Format(total decimal.Decimal) string {
	return total.Round(2).String() + "%"
}
