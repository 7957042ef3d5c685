package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocalizedNumber parses amounts written in either the European
// convention ("1.234,56", "50 000") or the Anglo convention ("1,234.56").
// It returns false for anything that does not reduce to a plain number.
func ParseLocalizedNumber(s string) (decimal.Decimal, bool) {
	v := strings.TrimSpace(s)
	// currency markers and grouping spaces (incl. narrow no-break used in
	// French documents)
	for _, cut := range []string{"€", "EUR", "RON", "LEI", "lei", "$", " ", " ", " "} {
		v = strings.ReplaceAll(v, cut, "")
	}
	if v == "" {
		return decimal.Decimal{}, false
	}

	lastDot := strings.LastIndex(v, ".")
	lastComma := strings.LastIndex(v, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// both present: the later one is the decimal separator
		if lastComma > lastDot {
			v = strings.ReplaceAll(v, ".", "")
			v = strings.Replace(v, ",", ".", 1)
		} else {
			v = strings.ReplaceAll(v, ",", "")
		}
	case lastComma >= 0:
		// lone comma: decimal if it has 1-2 trailing digits, grouping otherwise
		if tail := len(v) - lastComma - 1; tail >= 1 && tail <= 2 && strings.Count(v, ",") == 1 {
			v = strings.Replace(v, ",", ".", 1)
		} else {
			v = strings.ReplaceAll(v, ",", "")
		}
	case lastDot >= 0:
		// lone dot with 3 trailing digits and more digits before it is
		// European grouping ("1.234"), otherwise a decimal point
		if tail := len(v) - lastDot - 1; tail == 3 && lastDot > 0 && !strings.HasPrefix(v, "0.") {
			v = strings.ReplaceAll(v, ".", "")
		}
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
