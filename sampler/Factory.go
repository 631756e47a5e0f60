package sampler

import "fmt"

// Ctor constructs a Sampler from its raw distribution parameters and
// a seed for its random source. Constructors must tolerate and ignore
// unrecognized extra keys.
type Ctor func(params map[string]interface{}, seed uint64) (Sampler, error)

// Tags of the built-in sampler variants
const (
	UniformType           = "uniform"
	GaussianType          = "gaussian"
	MultiRangeUniformType = "multirange_uniform"
)

// registry is the process-wide mapping from sampler tag to
// constructor. It is mutated through Register only, which callers are
// expected to invoke during initialization, before any concurrent use.
var registry = map[string]Ctor{
	UniformType:           NewUniform,
	GaussianType:          NewGaussian,
	MultiRangeUniformType: NewMultiRangeUniform,
}

// Register makes a sampler constructor available under the given tag.
// Registering an already-registered tag overwrites the previous
// constructor, so user code can replace a built-in variant.
func Register(name string, ctor Ctor) {
	registry[name] = ctor
}

// Create builds the sampler registered under the given tag from the
// given distribution parameters. The error returned for an unknown
// tag wraps ErrNotFound.
func Create(name string, params map[string]interface{}, seed uint64) (Sampler, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("create: %q sampler is not registered in "+
			"the sampler factory, use Register to register the tag for "+
			"your sampler first: %w", name, ErrNotFound)
	}
	return ctor(params, seed)
}
