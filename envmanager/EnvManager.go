// Package envmanager implements the orchestration layer that drives
// one or more environments through the decide, step, record cycle of
// episodic training. The orchestrator decouples computing an agent's
// next action from advancing the simulated environment while keeping
// the two causally paired: every recorded step carries the exact
// observation set the policy saw, the actions it chose, and the
// observation set those actions produced.
package envmanager

import (
	"github.com/jfwhite/gorollout/brain"
	"github.com/jfwhite/gorollout/environment"
	"github.com/jfwhite/gorollout/stepinfo"
)

// Manager drives a fixed set of environments through step cycles.
// Every Step call returns exactly one StepInfo per environment, in a
// context order that is stable across cycles: index i always refers
// to the same environment instance.
//
// Implementations may step environments sequentially in the calling
// goroutine, as Local does, or hand each context to its own worker.
// Either way the StepInfo contract is the serialization boundary:
// only finalized StepInfo values cross it, so the two designs are
// interchangeable to callers.
type Manager interface {
	// Step runs one orchestration cycle over every context. An
	// environment whose GlobalDone is true is reset instead of
	// stepped, and its StepInfo records nil Actions.
	Step() ([]stepinfo.StepInfo, error)

	// ResetAll resets every context unconditionally, discarding any
	// in-flight action state, and returns the fresh step records,
	// each with a nil predecessor.
	ResetAll(config map[string]float64, trainMode bool,
		customResetParameters map[string]interface{}) ([]stepinfo.StepInfo, error)

	// ExternalBrains returns the agent group metadata of the first
	// context. Environments are assumed to share brain topology.
	ExternalBrains() map[string]brain.Parameters

	// ResetParameters returns the randomized config last applied to
	// the first context, exposed for logging.
	ResetParameters() map[string]float64

	// Close closes every context's environment best-effort,
	// aggregating any failures rather than stopping at the first.
	Close() error
}

// Context owns one environment handle exclusively, together with the
// most recent step record and the most recent action set the policy
// chose for it. A Context lives as long as its environment handle and
// is destroyed only on orchestrator shutdown.
type Context struct {
	env     environment.Environment
	current stepinfo.StepInfo
	pending stepinfo.Actions
}

// Env returns the environment the context owns
func (c *Context) Env() environment.Environment {
	return c.env
}

// Current returns the context's cached step record
func (c *Context) Current() stepinfo.StepInfo {
	return c.current
}

// Pending returns the most recent action set the policy chose for the
// context, whether or not it was applied. Actions computed on an
// auto-reset cycle are recorded here even though the reset ignores
// them.
func (c *Context) Pending() stepinfo.Actions {
	return c.pending
}
