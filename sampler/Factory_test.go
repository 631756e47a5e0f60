package sampler

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateBuiltins(t *testing.T) {
	tests := []struct {
		tag    string
		params map[string]interface{}
	}{
		{UniformType, map[string]interface{}{
			"min_value": 0.0, "max_value": 1.0,
		}},
		{GaussianType, map[string]interface{}{
			"mean": 0.0, "var": 1.0,
		}},
		{MultiRangeUniformType, map[string]interface{}{
			"intervals": [][]float64{{0, 1}},
		}},
	}

	for _, test := range tests {
		s, err := Create(test.tag, test.params, 42)
		if err != nil {
			t.Errorf("create %v: %v", test.tag, err)
		} else if s == nil {
			t.Errorf("create %v: nil sampler", test.tag)
		}
	}
}

func TestCreateUnknownTag(t *testing.T) {
	_, err := Create("nope", map[string]interface{}{}, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the offending tag, got: %v", err)
	}
}

func TestRegisterLastWins(t *testing.T) {
	defer Register(UniformType, NewUniform)

	called := false
	Register(UniformType, func(params map[string]interface{},
		seed uint64) (Sampler, error) {
		called = true
		return NewUniform(map[string]interface{}{
			"min_value": 0.0, "max_value": 1.0,
		}, seed)
	})

	if _, err := Create(UniformType, map[string]interface{}{}, 42); err != nil {
		t.Fatalf("create after re-register: %v", err)
	}
	if !called {
		t.Error("re-registered constructor was not used")
	}
}

func TestRegisterNewTag(t *testing.T) {
	Register("constant", func(params map[string]interface{},
		seed uint64) (Sampler, error) {
		return constantSampler(21), nil
	})
	defer delete(registry, "constant")

	s, err := Create("constant", nil, 42)
	if err != nil {
		t.Fatalf("create constant: %v", err)
	}
	if v := s.Sample(); v != 21 {
		t.Errorf("got %v, want 21", v)
	}
}

type constantSampler float64

func (c constantSampler) Sample() float64 {
	return float64(c)
}
