package service

import (
	"strconv"
	"strings"
)

// formatDecimal renders v the way the historical system did: shortest
// decimal form, always carrying a decimal point.
func formatDecimal(v float64) string {
	num := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(num, ".") {
		num += ".0"
	}
	return num
}

// correctRounding applies the legacy 2-decimal correction rule that all
// stored averages were produced with. Given a value whose fractional
// part has exactly two digits, the second digit is folded into the
// first half-up style, carrying into the integer part when the first
// fractional digit is 9. A fractional part of any other length is left
// completely untouched; that asymmetry is a known quirk, preserved
// bit-for-bit so new rows stay comparable with historical ones.
func correctRounding(v float64) float64 {
	parts := strings.SplitN(formatDecimal(v), ".", 2)
	first := parts[0]
	second := parts[1]

	if len(second) == 2 {
		if second[1] >= '5' {
			if second[0] != '9' {
				second = string(second[0] + 1)
			} else {
				second = "0"
				n, _ := strconv.Atoi(first)
				first = strconv.Itoa(n + 1)
			}
		} else {
			second = string(second[0])
		}
	}

	result, _ := strconv.ParseFloat(first+"."+second, 64)
	return result
}

// roundTwo pre-rounds to two decimal places (ties to even, matching the
// upstream producer of these values) before the legacy correction.
func roundTwo(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}
