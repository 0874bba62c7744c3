package extract

import (
	"fmt"
	"strconv"

	"github.com/vertex-gestao/prestacao/internal/normalize"
)

// stringField returns the value under key coerced to a string. The second
// return is false when the key is absent or null.
func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return fmt.Sprintf("%v", s), true
	}
}

// digitsField returns the value under key reduced to digits only.
func digitsField(m map[string]any, key string) (string, bool) {
	s, ok := stringField(m, key)
	if !ok {
		return "", false
	}
	return normalize.OnlyDigits(s), true
}

// moneyField returns the value under key as a decimal. JSON numbers pass
// through; strings are parsed with the comma-as-decimal convention.
func moneyField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		return normalize.ParseMoney(n)
	default:
		return normalize.ParseMoney(fmt.Sprintf("%v", n))
	}
}
