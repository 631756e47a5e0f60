// Package sampler implements per-episode randomization of environment
// parameters. Each named parameter is produced by a Sampler drawing
// from a configured distribution; a Manager bundles one Sampler per
// parameter and produces a full randomized parameter set on demand,
// typically once per episode reset.
package sampler

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Errors returned when building samplers. Both occur at construction
// time only; sampling itself is infallible once a Sampler exists.
var (
	// ErrConfiguration indicates a malformed or incomplete sampler
	// configuration entry
	ErrConfiguration = errors.New("invalid sampler configuration")

	// ErrNotFound indicates a request for an unregistered sampler tag
	ErrNotFound = errors.New("sampler not registered")
)

// Sampler produces one randomized scalar per call. Implementations
// are parameterized at construction by a distribution spec and draw
// independently on each call.
type Sampler interface {
	Sample() float64
}

// decode fills a variant's config struct from its raw parameter
// mapping. Unknown keys are ignored for forward compatibility with
// shared config blocks; missing keys leave the corresponding pointer
// field nil so constructors can report exactly which key is absent.
func decode(params map[string]interface{}, config interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrConfiguration)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("%v: %w", err, ErrConfiguration)
	}
	return nil
}

// missingKey reports a required distribution parameter that was not
// supplied in the configuration entry.
func missingKey(key string) error {
	return fmt.Errorf("missing required parameter %q: %w", key,
		ErrConfiguration)
}
