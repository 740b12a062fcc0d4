package store

import (
	"time"

	"github.com/oddsmith/scoresim/pkg/sim"
)

// Run is one persisted simulation batch: the parameters that produced
// it plus its aggregate statistics. Individual outcomes are not stored;
// a seeded run can be replayed from its parameters.
type Run struct {
	ID        int64   `column:"id" dbtype:"INTEGER PRIMARY KEY AUTOINCREMENT" auto:"true"`
	RateA     float64 `column:"rate_a" dbtype:"REAL NOT NULL"`
	RateB     float64 `column:"rate_b" dbtype:"REAL NOT NULL"`
	Count     int     `column:"sim_count" dbtype:"INTEGER NOT NULL"`
	Seed      int64   `column:"seed" dbtype:"INTEGER"`
	Seeded    bool    `column:"seeded" dbtype:"INTEGER NOT NULL"`
	WinsA     int     `column:"wins_a" dbtype:"INTEGER NOT NULL"`
	Draws     int     `column:"draws" dbtype:"INTEGER NOT NULL"`
	WinsB     int     `column:"wins_b" dbtype:"INTEGER NOT NULL"`
	AvgGoalsA float64 `column:"avg_goals_a" dbtype:"REAL NOT NULL"`
	AvgGoalsB float64 `column:"avg_goals_b" dbtype:"REAL NOT NULL"`
	AvgSpread float64 `column:"avg_spread" dbtype:"REAL NOT NULL"`
	AvgTotal  float64 `column:"avg_total" dbtype:"REAL NOT NULL"`
	CreatedAt string  `column:"created_at" dbtype:"TEXT NOT NULL" index:"true"`
}

// TableName implements Persistable.
func (r *Run) TableName() string { return "runs" }

// NewRun builds a Run record from batch parameters and their summary.
func NewRun(rateA, rateB float64, count int, seed int64, seeded bool, s *sim.Summary) *Run {
	return &Run{
		RateA:     rateA,
		RateB:     rateB,
		Count:     count,
		Seed:      seed,
		Seeded:    seeded,
		WinsA:     s.WinsA,
		Draws:     s.Draws,
		WinsB:     s.WinsB,
		AvgGoalsA: s.AvgGoalsA,
		AvgGoalsB: s.AvgGoalsB,
		AvgSpread: s.AvgSpread,
		AvgTotal:  s.AvgTotal,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
