package research

import "time"

// Progress is the ephemeral record of one running research. It is removed
// from the active set exactly when Fraction reaches 1, at which point the
// owning Research transitions to completed.
type Progress struct {
	ResearchID       string
	LaboratoryID     string
	StartTime        time.Time
	EstimatedEndTime time.Time
	Fraction         float64 // 0..1
}

// UpdateFraction recomputes the completion fraction at the given instant and
// reports whether the research is finished.
func (p *Progress) UpdateFraction(now time.Time) bool {
	total := p.EstimatedEndTime.Sub(p.StartTime)
	if total <= 0 {
		p.Fraction = 1
		return true
	}
	f := float64(now.Sub(p.StartTime)) / float64(total)
	if f >= 1 {
		p.Fraction = 1
		return true
	}
	if f < 0 {
		f = 0
	}
	p.Fraction = f
	return false
}
