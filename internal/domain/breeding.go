package domain

import (
	"fmt"
	"strconv"
)

var growthRates = map[int]string{
	1: "Slow",
	2: "Medium",
	3: "Fast",
	4: "Medium Slow",
	5: "Erratic",
	6: "Fluctuating",
}

// GrowthRateName maps a PokeAPI growth rate id to its display name.
func GrowthRateName(id int) string {
	if name, ok := growthRates[id]; ok {
		return name
	}
	return "Unknown"
}

// GenderRatio formats a gender rate given in eighths female; -1 is genderless.
func GenderRatio(rate int) string {
	if rate == -1 {
		return "Unknown"
	}
	male := float64(8-rate) / 8 * 100
	female := float64(rate) / 8 * 100
	return fmt.Sprintf("%s%% male, %s%% female", formatNumber(male), formatNumber(female))
}

// FormatTenths renders v/10 without trailing zeros ("0.7", "1", "12.5").
func FormatTenths(v int) string {
	return formatNumber(float64(v) / 10)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
