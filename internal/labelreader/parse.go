package labelreader

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`-?\$?\s?(\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,2})?`)

// ParseAmount picks the label total out of a model reply. A number on a line
// mentioning "total" wins over any other; otherwise the last number is used.
func ParseAmount(raw string) (decimal.Decimal, error) {
	var last, total string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "none") {
			continue
		}
		matches := amountPattern.FindAllString(line, -1)
		if len(matches) == 0 {
			continue
		}
		last = matches[len(matches)-1]
		if strings.Contains(strings.ToLower(line), "total") {
			total = last
		}
	}

	pick := total
	if pick == "" {
		pick = last
	}
	if pick == "" {
		return decimal.Zero, ErrNoAmount
	}

	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(pick)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrNoAmount
	}
	return amount.Round(2), nil
}
