// Package stepinfo implements the records exchanged between an
// orchestrator, its environments, and a policy on every step cycle.
package stepinfo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AgentObservation is one agent's view of the environment after a
// single transition: its observation vector, the reward for the
// transition, and whether its episode ended on this step.
type AgentObservation struct {
	Observation    mat.Vector
	Reward         float64
	Done           bool
	MaxStepReached bool
}

// Observations maps an agent group name to the observations of every
// agent in that group, all taken at the same step. Environments
// produce one Observations value per Step or Reset call.
type Observations map[string][]AgentObservation

// ActionInfo is everything a policy decided for one agent group at one
// step: the action itself plus the auxiliary outputs some policies
// carry (recurrent memory, text command, value estimates). ActionInfo
// is immutable once created.
type ActionInfo struct {
	Action mat.Vector
	Memory mat.Vector
	Text   string
	Value  []float64
}

// Actions maps an agent group name to the ActionInfo the policy chose
// for it. A nil Actions means "no action was applied", which occurs
// only across an episode reset.
type Actions map[string]ActionInfo

// StepInfo packages one transition of one environment: the observation
// set the policy saw, the observation set the environment produced,
// and the actions that caused the transition.
//
// Invariant: Current is always the environment's true response to
// applying exactly Actions to the state implied by Previous. Across an
// auto-reset this chain is broken by design: Actions is nil and
// Previous is the terminal record of the episode that just ended.
type StepInfo struct {
	Previous Observations
	Current  Observations
	Actions  Actions
}

// FromReset returns the StepInfo seeding a context after a reset. The
// prev argument is nil when no episode preceded the reset.
func FromReset(prev, current Observations) StepInfo {
	return StepInfo{Previous: prev, Current: current}
}

func (s StepInfo) String() string {
	return fmt.Sprintf("StepInfo | Groups: %v  |  Reset: %v",
		len(s.Current), s.Actions == nil)
}
