package sim

// Outcome holds the goal counts of one simulated match.
// Values are never mutated after creation.
type Outcome struct {
	GoalsA int `json:"goalsA"`
	GoalsB int `json:"goalsB"`
}

// Spread returns the signed goal differential, team A minus team B.
func (o Outcome) Spread() int {
	return o.GoalsA - o.GoalsB
}

// Total returns the combined goal count of the match.
func (o Outcome) Total() int {
	return o.GoalsA + o.GoalsB
}
