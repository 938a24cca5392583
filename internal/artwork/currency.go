package artwork

import (
	"fmt"
	"strconv"
	"strings"
)

func CurrencySymbol(c Currency) string {
	if c == CurrencyNGN {
		return "₦"
	}
	return "$"
}

// FormatPrice renders a display price with the currency symbol and
// thousands separators, e.g. "$1,200" or "₦850,000".
func FormatPrice(price float64, c Currency) string {
	whole := strconv.FormatFloat(price, 'f', -1, 64)
	frac := ""
	if i := strings.IndexByte(whole, '.'); i >= 0 {
		whole, frac = whole[:i], whole[i:]
	}

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return fmt.Sprintf("%s%s%s", CurrencySymbol(c), b.String(), frac)
}
