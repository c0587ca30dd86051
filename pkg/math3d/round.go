package math3d

import "math"

// Round rounds n to the given number of decimal digits.
func Round(n float64, digits int) float64 {
	m := math.Pow(10, float64(digits))
	return math.Round(n*m) / m
}

// Rounder returns Round with the digit count fixed.
func Rounder(digits int) func(float64) float64 {
	return func(n float64) float64 {
		return Round(n, digits)
	}
}

// Round4 rounds to four decimal digits.
var Round4 = Rounder(4)

// RoundMatrix rounds every component of m. Handy for stable test fixtures.
func RoundMatrix(m Matrix, digits int) Matrix {
	var r Matrix
	for col := range 4 {
		for row := range 4 {
			r[col][row] = Round(m[col][row], digits)
		}
	}
	return r
}
