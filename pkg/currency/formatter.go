package currency

import (
	"fmt"
	"strings"
)

type style struct {
	symbol   string
	decimals int
}

// Display conventions for the currencies offered by the search form. Codes
// outside this map fall back to "<CODE> <amount>" with two decimals.
var styles = map[string]style{
	"USD": {"$", 2},
	"EUR": {"€", 2},
	"GBP": {"£", 2},
	"JPY": {"¥", 0},
	"AUD": {"A$", 2},
	"CAD": {"C$", 2},
	"CHF": {"CHF ", 2},
	"CNY": {"¥", 2},
	"INR": {"₹", 2},
	"KWD": {"KD ", 3},
	"SAR": {"SAR ", 2},
	"AED": {"AED ", 2},
}

// Format renders an amount for display in the given currency, with a
// thousands separator and the currency's usual decimal count.
func Format(code string, amount float64) string {
	s, ok := styles[strings.ToUpper(code)]
	if !ok {
		s = style{symbol: strings.ToUpper(code) + " ", decimals: 2}
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := fmt.Sprintf("%.*f", s.decimals, amount)

	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		fracPart = formatted[idx:]
	}

	result := s.symbol + addThousandsSeparator(intPart, ",") + fracPart
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
