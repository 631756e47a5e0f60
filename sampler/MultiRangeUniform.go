package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// MultiRangeUniformConfig describes a union of intervals, each given
// as a [low, high] pair.
type MultiRangeUniformConfig struct {
	Intervals [][]float64 `mapstructure:"intervals"`
}

// MultiRangeUniform draws values uniformly from a union of intervals.
// An interval is first chosen with probability proportional to its
// length, then a value is drawn uniformly within it, so the density is
// uniform over the whole union: wide intervals are proportionally more
// likely to be sampled from, not equally likely as a per-interval coin
// flip would give.
type MultiRangeUniform struct {
	intervals []r1.Interval
	choose    distuv.Categorical
	src       rand.Source
}

// NewMultiRangeUniform constructs a MultiRangeUniform sampler from its
// raw parameter mapping. Required key: intervals, a sequence of
// [low, high] pairs. Extra keys are ignored. Construction fails if any
// entry is not a pair or if every interval has zero length, since the
// selection weights are lengths normalized by total length.
func NewMultiRangeUniform(params map[string]interface{}, seed uint64) (Sampler, error) {
	var config MultiRangeUniformConfig
	if err := decode(params, &config); err != nil {
		return nil, fmt.Errorf("newMultiRangeUniform: %w", err)
	}
	if config.Intervals == nil {
		return nil, fmt.Errorf("newMultiRangeUniform: %w",
			missingKey("intervals"))
	}

	intervals := make([]r1.Interval, len(config.Intervals))
	lengths := make([]float64, len(config.Intervals))
	total := 0.0
	for i, pair := range config.Intervals {
		if len(pair) != 2 {
			return nil, fmt.Errorf("newMultiRangeUniform: interval %d must "+
				"be a [low, high] pair, got %v values: %w", i, len(pair),
				ErrConfiguration)
		}
		low, high := pair[0], pair[1]
		if low > high {
			low, high = high, low
		}
		intervals[i] = r1.Interval{Min: low, Max: high}
		lengths[i] = high - low
		total += lengths[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("newMultiRangeUniform: total interval "+
			"length is zero: %w", ErrConfiguration)
	}

	src := rand.NewSource(seed)
	return &MultiRangeUniform{
		intervals: intervals,
		choose:    distuv.NewCategorical(lengths, src),
		src:       src,
	}, nil
}

// Sample chooses an interval with probability proportional to its
// length, then draws uniformly within it
func (m *MultiRangeUniform) Sample() float64 {
	interval := m.intervals[int(m.choose.Rand())]
	dist := distuv.Uniform{
		Min: interval.Min,
		Max: interval.Max,
		Src: m.src,
	}
	return dist.Rand()
}
