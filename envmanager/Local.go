package envmanager

import (
	"errors"
	"fmt"

	"github.com/jfwhite/gorollout/agent"
	"github.com/jfwhite/gorollout/brain"
	"github.com/jfwhite/gorollout/environment"
	"github.com/jfwhite/gorollout/sampler"
	"github.com/jfwhite/gorollout/stepinfo"
)

// Local is a Manager that steps every environment sequentially in the
// calling goroutine. Each context is touched by exactly one logical
// owner at a time, so no locking is needed; every policy decision,
// environment step, and reset is synchronous and blocking.
type Local struct {
	policy    agent.Policy
	contexts  []*Context
	samplers  *sampler.Manager
	trainMode bool
}

var _ Manager = &Local{}

// Option configures a Local manager
type Option func(*Local)

// WithSamplerManager attaches a sampler manager whose SampleAll
// supplies a fresh randomized config to every episode reset that is
// not given an explicit config: auto-resets and ResetAll(nil, ...).
func WithSamplerManager(m *sampler.Manager) Option {
	return func(l *Local) {
		l.samplers = m
	}
}

// NewLocal returns a Local manager driving the given environments
// with the given policy. Every context is seeded by an initial reset,
// so the manager starts with a valid observation cache and Step may
// be called immediately.
func NewLocal(policy agent.Policy, envs []environment.Environment,
	opts ...Option) (*Local, error) {
	if policy == nil {
		return nil, fmt.Errorf("newLocal: no policy given")
	}
	if len(envs) == 0 {
		return nil, fmt.Errorf("newLocal: no environments given")
	}

	local := &Local{policy: policy, trainMode: true}
	for _, opt := range opts {
		opt(local)
	}
	for _, env := range envs {
		local.contexts = append(local.contexts, &Context{env: env})
	}

	if _, err := local.ResetAll(nil, true, nil); err != nil {
		return nil, fmt.Errorf("newLocal: %v", err)
	}
	return local, nil
}

// Step runs one orchestration cycle: for each context in order, ask
// the policy for actions given the context's current observations,
// then either apply them to the environment or, if the environment's
// GlobalDone is set, reset it instead. The new StepInfo replaces the
// context's cache and is appended to the returned sequence, so index
// i of the result always refers to the same environment across calls.
//
// An auto-reset records nil Actions: no action was applied, and the
// previous observations are the terminal record of the ended episode.
// A failing policy or environment call aborts the cycle with that
// error unmodified.
func (l *Local) Step() ([]stepinfo.StepInfo, error) {
	steps := make([]stepinfo.StepInfo, 0, len(l.contexts))
	for i, c := range l.contexts {
		actions, err := l.policy.GetAction(c.current.Current)
		if err != nil {
			return nil, fmt.Errorf("step: context %d: %w", i, err)
		}
		c.pending = actions

		var current stepinfo.Observations
		var taken stepinfo.Actions
		if c.env.GlobalDone() {
			current, err = c.env.Reset(l.nextResetConfig(nil), l.trainMode, nil)
		} else {
			current, err = c.env.Step(actions)
			taken = actions
		}
		if err != nil {
			return nil, fmt.Errorf("step: context %d: %w", i, err)
		}

		c.current = stepinfo.StepInfo{
			Previous: c.current.Current,
			Current:  current,
			Actions:  taken,
		}
		steps = append(steps, c.current)
	}
	return steps, nil
}

// ResetAll resets every context unconditionally and reseeds each
// cache with a step record that has no predecessor. A nil config is
// replaced per context by a fresh draw from the attached sampler
// manager, if any.
func (l *Local) ResetAll(config map[string]float64, trainMode bool,
	customResetParameters map[string]interface{}) ([]stepinfo.StepInfo, error) {
	l.trainMode = trainMode

	steps := make([]stepinfo.StepInfo, 0, len(l.contexts))
	for i, c := range l.contexts {
		obs, err := c.env.Reset(l.nextResetConfig(config), trainMode,
			customResetParameters)
		if err != nil {
			return nil, fmt.Errorf("resetAll: context %d: %w", i, err)
		}
		c.pending = nil
		c.current = stepinfo.FromReset(nil, obs)
		steps = append(steps, c.current)
	}
	return steps, nil
}

// Contexts returns the manager's contexts in their stable order. The
// slice must not be mutated; it is exposed for inspection only.
func (l *Local) Contexts() []*Context {
	return l.contexts
}

// ExternalBrains returns the first context's agent group metadata
func (l *Local) ExternalBrains() map[string]brain.Parameters {
	return l.contexts[0].env.ExternalBrains()
}

// ResetParameters returns the first context's last-applied config
func (l *Local) ResetParameters() map[string]float64 {
	return l.contexts[0].env.ResetParameters()
}

// Close closes every context's environment. Teardown is best-effort:
// every close is attempted even if an earlier one fails, and the
// failures are aggregated into the returned error.
func (l *Local) Close() error {
	var errs []error
	for i, c := range l.contexts {
		if err := c.env.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close: context %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// nextResetConfig resolves the config for one episode reset. Explicit
// configs win; otherwise the sampler manager, when attached, draws a
// fresh randomized parameter set.
func (l *Local) nextResetConfig(config map[string]float64) map[string]float64 {
	if config == nil && l.samplers != nil {
		return l.samplers.SampleAll()
	}
	return config
}
