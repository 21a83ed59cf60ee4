package common

import (
	"github.com/pkg/errors"
)

type Weight struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Weights are the tunable evaluation parameters of a game.
// They are shared read-only by all concurrent searches.
type Weights []Weight

func (w Weights) Value(i int) float64 {
	return w[i].Value
}

func (w Weights) Values() []float64 {
	var result = make([]float64, len(w))
	for i := range w {
		result[i] = w[i].Value
	}
	return result
}

// WithValues returns a copy of w holding the given values.
func (w Weights) WithValues(values []float64) (Weights, error) {
	if len(values) != len(w) {
		return nil, errors.Errorf("expected %d weights, got %d", len(w), len(values))
	}
	var result = append(Weights(nil), w...)
	for i, v := range values {
		if v < result[i].Min || v > result[i].Max {
			return nil, errors.Errorf("weight %v=%v out of range [%v, %v]",
				result[i].Name, v, result[i].Min, result[i].Max)
		}
		result[i].Value = v
	}
	return result, nil
}
