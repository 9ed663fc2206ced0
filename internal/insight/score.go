// Package insight implements the analyzers that turn raw life records
// into scored, classified reports. Every analyzer is a pure function over
// already-fetched snapshots plus an explicit reference time; the Engine
// wires them to a Storage implementation.
package insight

import "math"

// clamp constrains v to the inclusive range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampScore constrains a score to the canonical [0, 100] range.
func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}

// weightedSum combines value/weight pairs. Weights are expected to sum
// to 1; callers round the result themselves.
func weightedSum(pairs ...[2]float64) float64 {
	var total float64
	for _, p := range pairs {
		total += p[0] * p[1]
	}
	return total
}

// roundPct converts a 0-1 ratio to a rounded whole percentage.
func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}
