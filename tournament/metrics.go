package tournament

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a run's stats into rates and game-length
// aggregates.
type Summary struct {
	Episodes   int
	WinRate1   float64
	WinRate2   float64
	DrawRate   float64
	MeanPlies  float64
	StdevPlies float64
	MinPlies   float64
	MaxPlies   float64
}

// Summary computes the run aggregates. A run with no episodes yields
// the zero Summary.
func (s Stats) Summary() Summary {
	if s.Episodes == 0 {
		return Summary{}
	}

	mean, stdev := stat.MeanStdDev(s.Plies, nil)
	n := float64(s.Episodes)
	return Summary{
		Episodes:   s.Episodes,
		WinRate1:   float64(s.Wins1) / n,
		WinRate2:   float64(s.Wins2) / n,
		DrawRate:   float64(s.Draws) / n,
		MeanPlies:  mean,
		StdevPlies: stdev,
		MinPlies:   floats.Min(s.Plies),
		MaxPlies:   floats.Max(s.Plies),
	}
}
