// Package agent defines the policy collaborator interface consumed by
// the orchestrator.
package agent

import "github.com/jfwhite/gorollout/stepinfo"

// Policy chooses the next actions for every agent group given the
// current observation set. The orchestrator calls GetAction exactly
// once per environment per cycle; no other contract is assumed.
//
// How a Policy chooses its actions is entirely its own business: a
// neural network, a lookup table, or a fixed script all satisfy the
// interface equally well.
type Policy interface {
	GetAction(obs stepinfo.Observations) (stepinfo.Actions, error)
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(obs stepinfo.Observations) (stepinfo.Actions, error)

func (f PolicyFunc) GetAction(obs stepinfo.Observations) (stepinfo.Actions, error) {
	return f(obs)
}
