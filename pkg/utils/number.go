package utils

import "math"

// Percent devolve part/whole em porcentagem com duas casas; whole zero resulta em zero
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(part/whole*10000) / 100
}
