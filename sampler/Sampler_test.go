package sampler

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/stat"
)

const draws = 10000

func TestUniformRangeAndMean(t *testing.T) {
	s, err := NewUniform(map[string]interface{}{
		"min_value": -1.0,
		"max_value": 3.0,
	}, 42)
	if err != nil {
		t.Fatalf("newUniform: %v", err)
	}

	samples := make([]float64, draws)
	for i := range samples {
		v := s.Sample()
		if v < -1.0 || v >= 3.0 {
			t.Fatalf("sample %v outside [-1, 3)", v)
		}
		samples[i] = v
	}

	mean := stat.Mean(samples, nil)
	if math.Abs(mean-1.0) > 0.1 {
		t.Errorf("sample mean %v, expected about 1.0", mean)
	}
}

func TestUniformIgnoresUnknownKeys(t *testing.T) {
	s, err := NewUniform(map[string]interface{}{
		"min_value":    0.0,
		"max_value":    1.0,
		"resampling":   true,
		"curriculum":   "lesson-3",
		"sampler-seed": 17,
	}, 42)
	if err != nil {
		t.Fatalf("extra keys should be ignored, got: %v", err)
	}
	if v := s.Sample(); v < 0 || v >= 1 {
		t.Errorf("sample %v outside [0, 1)", v)
	}
}

func TestUniformMissingKeys(t *testing.T) {
	tests := []struct {
		params  map[string]interface{}
		missing string
	}{
		{map[string]interface{}{"max_value": 1.0}, "min_value"},
		{map[string]interface{}{"min_value": 0.0}, "max_value"},
	}

	for _, test := range tests {
		_, err := NewUniform(test.params, 42)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("expected ErrConfiguration, got: %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), test.missing) {
			t.Errorf("error should name %q, got: %v", test.missing, err)
		}
	}
}

func TestGaussianMeanAndVariance(t *testing.T) {
	s, err := NewGaussian(map[string]interface{}{
		"mean": 2.0,
		"var":  9.0,
	}, 42)
	if err != nil {
		t.Fatalf("newGaussian: %v", err)
	}

	samples := make([]float64, draws)
	for i := range samples {
		samples[i] = s.Sample()
	}

	mean, variance := stat.Mean(samples, nil), stat.Variance(samples, nil)
	if math.Abs(mean-2.0) > 0.15 {
		t.Errorf("sample mean %v, expected about 2.0", mean)
	}
	// var is a variance: the sample variance converges to 9, not 81
	if math.Abs(variance-9.0) > 0.6 {
		t.Errorf("sample variance %v, expected about 9.0", variance)
	}
}

func TestGaussianMissingKeys(t *testing.T) {
	if _, err := NewGaussian(map[string]interface{}{"var": 1.0}, 42); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for missing mean, got: %v", err)
	}
	if _, err := NewGaussian(map[string]interface{}{"mean": 1.0}, 42); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for missing var, got: %v", err)
	}
}

func TestGaussianNegativeVariance(t *testing.T) {
	_, err := NewGaussian(map[string]interface{}{
		"mean": 0.0,
		"var":  -1.0,
	}, 42)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got: %v", err)
	}
}

func TestMultiRangeUniformWeightsByLength(t *testing.T) {
	s, err := NewMultiRangeUniform(map[string]interface{}{
		"intervals": [][]float64{{0, 1}, {2, 6}},
	}, 42)
	if err != nil {
		t.Fatalf("newMultiRangeUniform: %v", err)
	}

	inSecond := 0
	for i := 0; i < draws; i++ {
		v := s.Sample()
		switch {
		case v >= 0 && v < 1:
		case v >= 2 && v < 6:
			inSecond++
		default:
			t.Fatalf("sample %v outside both intervals", v)
		}
	}

	// The second interval holds 4/5 of the total length
	fraction := float64(inSecond) / float64(draws)
	if math.Abs(fraction-0.8) > 0.02 {
		t.Errorf("fraction in second interval %v, expected about 0.8",
			fraction)
	}
}

func TestMultiRangeUniformReversedPair(t *testing.T) {
	s, err := NewMultiRangeUniform(map[string]interface{}{
		"intervals": [][]float64{{5, 3}},
	}, 42)
	if err != nil {
		t.Fatalf("newMultiRangeUniform: %v", err)
	}
	for i := 0; i < 100; i++ {
		if v := s.Sample(); v < 3 || v >= 5 {
			t.Fatalf("sample %v outside [3, 5)", v)
		}
	}
}

func TestMultiRangeUniformZeroTotalLength(t *testing.T) {
	_, err := NewMultiRangeUniform(map[string]interface{}{
		"intervals": [][]float64{{2, 2}},
	}, 42)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got: %v", err)
	}
}

func TestMultiRangeUniformMissingIntervals(t *testing.T) {
	_, err := NewMultiRangeUniform(map[string]interface{}{}, 42)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got: %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "intervals") {
		t.Errorf("error should name intervals, got: %v", err)
	}
}

func TestMultiRangeUniformMalformedPair(t *testing.T) {
	_, err := NewMultiRangeUniform(map[string]interface{}{
		"intervals": [][]float64{{0, 1, 2}},
	}, 42)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got: %v", err)
	}
}
