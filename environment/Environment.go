// Package environment outlines the interface that concrete simulated
// environments must implement to be driven by the orchestrator
package environment

import (
	"github.com/jfwhite/gorollout/brain"
	"github.com/jfwhite/gorollout/stepinfo"
)

// Environment is one simulated episode source. An Environment starts
// each episode on Reset and advances it on Step; once its internal
// step budget (or any other global stopping condition) is exhausted,
// GlobalDone reports true and the environment should be Reset before
// it is stepped again.
//
// Implementations are free to run in-process or to front a remote
// simulation; the orchestrator only depends on this contract.
type Environment interface {
	// Step advances the environment by applying the given actions
	// and returns the resulting observations. A nil Actions is a
	// valid "continue with no action" call, used to sample the
	// current state without influencing it.
	Step(actions stepinfo.Actions) (stepinfo.Observations, error)

	// Reset starts a new episode. The config mapping carries
	// randomized environment parameters (unknown keys are ignored);
	// trainMode hints whether the episode is for training or
	// inference; customResetParameters is an opaque escape hatch for
	// environment-specific reset data.
	Reset(config map[string]float64, trainMode bool,
		customResetParameters map[string]interface{}) (stepinfo.Observations, error)

	// GlobalDone reports whether the environment should stop
	// producing novel episodes until it is Reset.
	GlobalDone() bool

	// ExternalBrains returns the static shape metadata of every
	// agent group in the environment.
	ExternalBrains() map[string]brain.Parameters

	// ResetParameters returns the config applied by the most recent
	// Reset, exposed for logging.
	ResetParameters() map[string]float64

	// Close releases the environment's resources. Close is
	// idempotent and safe to call mid-episode.
	Close() error
}
