package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformConfig describes a uniform distribution over
// [MinValue, MaxValue). Pointer fields distinguish a missing key from
// an explicit zero.
type UniformConfig struct {
	MinValue *float64 `mapstructure:"min_value"`
	MaxValue *float64 `mapstructure:"max_value"`
}

// Uniform draws values uniformly from the half-open interval
// [min_value, max_value)
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform constructs a Uniform sampler from its raw parameter
// mapping. Required keys: min_value, max_value. Extra keys are
// ignored.
func NewUniform(params map[string]interface{}, seed uint64) (Sampler, error) {
	var config UniformConfig
	if err := decode(params, &config); err != nil {
		return nil, fmt.Errorf("newUniform: %w", err)
	}
	if config.MinValue == nil {
		return nil, fmt.Errorf("newUniform: %w", missingKey("min_value"))
	}
	if config.MaxValue == nil {
		return nil, fmt.Errorf("newUniform: %w", missingKey("max_value"))
	}

	return &Uniform{
		dist: distuv.Uniform{
			Min: *config.MinValue,
			Max: *config.MaxValue,
			Src: rand.NewSource(seed),
		},
	}, nil
}

// Sample draws a value from [min_value, max_value)
func (u *Uniform) Sample() float64 {
	return u.dist.Rand()
}
