// Package brain describes the static shape metadata of an agent group.
// A brain is created once per environment and never mutated afterwards.
package brain

import "fmt"

// ActionType indicates whether an agent group's actions are discrete
// or continuous
type ActionType int

const (
	Discrete ActionType = iota
	Continuous
)

func (a ActionType) String() string {
	switch a {
	case Discrete:
		return "Discrete"
	case Continuous:
		return "Continuous"
	default:
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
}

// Parameters describes the observation and action layout of one agent
// group. Environments expose one Parameters per agent group they
// simulate, and policies size their inputs and outputs from it.
type Parameters struct {
	Name                string
	ObservationSize     int
	StackedObservations int
	ActionSize          int
	ActionType          ActionType
	ActionDescriptions  []string
}

func (p Parameters) String() string {
	return fmt.Sprintf("Brain %v | Obs: %v x %v  |  Actions (%v): %v",
		p.Name, p.ObservationSize, p.StackedObservations, p.ActionType,
		p.ActionSize)
}
