package sim

// Summary holds the aggregate statistics of one simulation batch.
// Percentages are plain ratios times 100; rounding for display is a
// presentation concern.
type Summary struct {
	Total int `json:"total"`

	WinsA int `json:"winsA"`
	Draws int `json:"draws"`
	WinsB int `json:"winsB"`

	PctWinsA float64 `json:"pctWinsA"`
	PctDraws float64 `json:"pctDraws"`
	PctWinsB float64 `json:"pctWinsB"`

	AvgGoalsA float64 `json:"avgGoalsA"`
	AvgGoalsB float64 `json:"avgGoalsB"`
	AvgSpread float64 `json:"avgSpread"`
	AvgTotal  float64 `json:"avgTotal"`
}

// Summarize reduces a batch of outcomes to win/draw/loss counts,
// percentages and goal averages in a single pass. A nil collection
// yields ErrNilOutcomes, an empty one ErrEmptyOutcomes, so callers can
// tell which precondition failed.
func Summarize(outcomes []Outcome) (*Summary, error) {
	if outcomes == nil {
		return nil, ErrNilOutcomes
	}
	if len(outcomes) == 0 {
		return nil, ErrEmptyOutcomes
	}

	s := &Summary{Total: len(outcomes)}

	var goalsA, goalsB int
	for _, o := range outcomes {
		switch spread := o.Spread(); {
		case spread > 0:
			s.WinsA++
		case spread < 0:
			s.WinsB++
		default:
			s.Draws++
		}
		goalsA += o.GoalsA
		goalsB += o.GoalsB
	}

	n := float64(s.Total)
	s.PctWinsA = float64(s.WinsA) / n * 100
	s.PctDraws = float64(s.Draws) / n * 100
	s.PctWinsB = float64(s.WinsB) / n * 100

	s.AvgGoalsA = float64(goalsA) / n
	s.AvgGoalsB = float64(goalsB) / n
	s.AvgSpread = s.AvgGoalsA - s.AvgGoalsB
	s.AvgTotal = s.AvgGoalsA + s.AvgGoalsB

	return s, nil
}
