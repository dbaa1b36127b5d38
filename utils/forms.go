package utils

import (
	"strconv"
	"strings"
)

// ParseDecimal parses a monetary form value. Plain dot decimals are taken as
// is; only values carrying a decimal comma are read as Brazilian format
// ("1.500,00"), where dots are thousands separators.
func ParseDecimal(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if strings.Contains(raw, ",") {
		norm := strings.ReplaceAll(raw, ".", "")
		norm = strings.ReplaceAll(norm, ",", ".")
		return strconv.ParseFloat(norm, 64)
	}
	return strconv.ParseFloat(raw, 64)
}
