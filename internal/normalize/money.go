package normalize

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseMoney converts a locale-formatted monetary string into a decimal.
// When a comma is present it is taken as the decimal separator and dots as
// thousands separators. Without a comma, only the last dot is treated as
// decimal. Returns false when no number can be recovered.
func ParseMoney(raw string) (float64, bool) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return 0, false
	}

	var b strings.Builder
	for _, r := range str {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	str = b.String()
	if str == "" {
		return 0, false
	}

	if strings.Contains(str, ",") {
		str = strings.ReplaceAll(str, ".", "")
		str = strings.Replace(str, ",", ".", 1)
		str = strings.ReplaceAll(str, ",", "")
	} else if parts := strings.Split(str, "."); len(parts) > 2 {
		dec := parts[len(parts)-1]
		str = strings.Join(parts[:len(parts)-1], "") + "." + dec
	}

	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// FormatBRL renders a value as Brazilian currency, e.g. 1500.5 → "R$ 1.500,50".
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("R$ %v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
