package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Parameter domains for a simulation batch.
const (
	// MaxRate caps the expected goals per team per match.
	MaxRate = 20.0

	// MinSimulations and MaxSimulations bound the batch size.
	MinSimulations = 1
	MaxSimulations = 1_000_000
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Params holds the validated inputs of one simulation batch.
type Params struct {
	RateA float64 `json:"rateA" validate:"gte=0,lte=20"`
	RateB float64 `json:"rateB" validate:"gte=0,lte=20"`
	Count int     `json:"count" validate:"gte=1,lte=1000000"`
}

// Validate checks every parameter against its documented domain and
// returns a RangeError naming the first violation. Finiteness is
// checked up front because NaN and infinity have no meaningful place
// in the tag-driven range checks.
func (p Params) Validate() error {
	if err := checkFinite("rateA", p.RateA); err != nil {
		return err
	}
	if err := checkFinite("rateB", p.RateB); err != nil {
		return err
	}

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "RateA":
		return NewRangeError("rateA", p.RateA, boundFor(fe))
	case "RateB":
		return NewRangeError("rateB", p.RateB, boundFor(fe))
	case "Count":
		return NewRangeError("count", p.Count, boundFor(fe))
	}
	return err
}

// checkFinite rejects NaN and infinite rates.
func checkFinite(name string, rate float64) error {
	if math.IsNaN(rate) {
		return NewRangeError(name, rate, "must be a finite number, got NaN")
	}
	if math.IsInf(rate, 0) {
		return NewRangeError(name, rate, "must be a finite number, got infinity")
	}
	return nil
}

// boundFor renders a validator tag failure as a human-readable bound.
func boundFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
}
