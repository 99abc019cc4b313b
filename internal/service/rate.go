package service

// RateEngine computes the current hourly rate from occupancy pressure. It is
// pure: the same slot counts always produce the same rate. The rate is
// recomputed on every render and charged at the moment of checkout, not locked
// in at check-in, so a driver can pay a different rate at exit than was shown
// at entry. That is a property of the pricing model, not a defect.
type RateEngine struct {
	Base      float64
	Surge     float64
	Threshold float64
}

func NewRateEngine(base, surge, threshold float64) RateEngine {
	return RateEngine{Base: base, Surge: surge, Threshold: threshold}
}

// Rate returns the base rate plus the surge premium when the occupancy ratio
// strictly exceeds the threshold. An empty facility has ratio 0; the zero
// total guard is explicit, not left to float division.
func (e RateEngine) Rate(totalSlots, occupiedSlots int) float64 {
	if totalSlots <= 0 {
		return e.Base
	}
	if float64(occupiedSlots)/float64(totalSlots) > e.Threshold {
		return e.Base + e.Surge
	}
	return e.Base
}
