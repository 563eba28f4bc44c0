package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a monetary amount to two decimal places, half away from zero.
// Applied only at the presentation boundary so rounding error never compounds
// across pricing stages.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatPercent renders a margin the way quotes display it: "25%", "12.5%".
func FormatPercent(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	return s + "%"
}

// FormatCurrency renders an EUR amount for human-readable messages and logs.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("€%.2f", Round2(amount))
}

// ParseCurrencyAmount parses a user-entered amount, tolerating a currency
// symbol and thousands separators.
func ParseCurrencyAmount(amountStr string) (float64, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, "EUR", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency amount: %s", amountStr)
	}
	return amount, nil
}
