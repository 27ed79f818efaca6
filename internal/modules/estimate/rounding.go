package estimate

import "strconv"

// roundTo rounds v to the given number of decimal places, half to even on the
// exact binary value. Scaling by a power of ten and calling math.Round would
// round 2.675 up even though the stored double is just below it.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
