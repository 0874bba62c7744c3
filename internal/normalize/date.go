package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
	localDateRe = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})$`)
	isoPrefixRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// ToISODate converts a date-like string (ISO Y-M-D/Y/M/D or local D-M-Y with
// ".", "/" or "-" separators) into "YYYY-MM-DD". Two-digit years map to the
// 1900s when ≥ 70, otherwise the 2000s. Returns false when the text does not
// match either shape.
func ToISODate(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%04s-%02s-%02s", m[1], m[2], m[3]), true
	}

	if m := localDateRe.FindStringSubmatch(text); m != nil {
		day, month, year := m[1], m[2], m[3]
		if len(year) == 2 {
			if n, _ := strconv.Atoi(year); n >= 70 {
				year = "19" + year
			} else {
				year = "20" + year
			}
		}
		return fmt.Sprintf("%04s-%02s-%02s", year, month, day), true
	}

	return "", false
}

// FormatDateBR renders an ISO date as DD/MM/YYYY for display.
func FormatDateBR(iso string) string {
	m := isoPrefixRe.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}
