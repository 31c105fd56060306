package odds

import "math"

// Fraction is a satisfying/total tally, e.g. the number of runouts a hand
// wins out of the number of runouts evaluated.
type Fraction struct {
	Satisfying uint64
	Total      uint64
}

// Percentage returns 100 * Satisfying / Total, or NaN if Total is zero.
func (f Fraction) Percentage() float64 {
	if f.Total == 0 {
		return math.NaN()
	}
	return 100 * float64(f.Satisfying) / float64(f.Total)
}
