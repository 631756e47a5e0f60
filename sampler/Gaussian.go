package sampler

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianConfig describes a normal distribution by its mean and
// variance. Var is a variance, not a standard deviation.
type GaussianConfig struct {
	Mean *float64 `mapstructure:"mean"`
	Var  *float64 `mapstructure:"var"`
}

// Gaussian draws values from a normal distribution with a configured
// mean and variance
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian constructs a Gaussian sampler from its raw parameter
// mapping. Required keys: mean, var. Extra keys are ignored.
func NewGaussian(params map[string]interface{}, seed uint64) (Sampler, error) {
	var config GaussianConfig
	if err := decode(params, &config); err != nil {
		return nil, fmt.Errorf("newGaussian: %w", err)
	}
	if config.Mean == nil {
		return nil, fmt.Errorf("newGaussian: %w", missingKey("mean"))
	}
	if config.Var == nil {
		return nil, fmt.Errorf("newGaussian: %w", missingKey("var"))
	}
	if *config.Var < 0 {
		return nil, fmt.Errorf("newGaussian: var must be non-negative, "+
			"got %v: %w", *config.Var, ErrConfiguration)
	}

	return &Gaussian{
		dist: distuv.Normal{
			Mu:    *config.Mean,
			Sigma: math.Sqrt(*config.Var),
			Src:   rand.NewSource(seed),
		},
	}, nil
}

// Sample draws a value from the configured normal distribution
func (g *Gaussian) Sample() float64 {
	return g.dist.Rand()
}
