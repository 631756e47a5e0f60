// Package lineworld implements a minimal one-dimensional environment.
// A single agent holds a position on [-1, 1] and moves it by the
// action amount, clamped to the configured step size. Reaching either
// end terminates the episode with the position as the reward. The
// environment is deliberately tiny so orchestration and randomization
// behavior can be verified against it deterministically.
package lineworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jfwhite/gorollout/brain"
	"github.com/jfwhite/gorollout/environment"
	"github.com/jfwhite/gorollout/stepinfo"
)

// BrainName is the name of the environment's single agent group
const BrainName = "lineworld"

// Default physical parameters, overridable per episode through the
// reset config
const (
	DefaultStepSize        = 0.1
	DefaultInitialPosition = 0.0
)

// Reset config keys honored by the environment
const (
	StepSizeParam        = "step_size"
	InitialPositionParam = "initial_position"
)

// LineWorld implements environment.Environment on a 1-D line
type LineWorld struct {
	position        float64
	stepSize        float64
	initialPosition float64
	stepCount       int
	maxSteps        int
	brains          map[string]brain.Parameters
	resetParams     map[string]float64
	closed          bool
}

// Compile-time interface check
var _ environment.Environment = &LineWorld{}

// New returns a LineWorld whose GlobalDone triggers once more than
// maxSteps steps have been taken since the last Reset
func New(maxSteps int) *LineWorld {
	return &LineWorld{
		stepSize:        DefaultStepSize,
		initialPosition: DefaultInitialPosition,
		maxSteps:        maxSteps,
		brains: map[string]brain.Parameters{
			BrainName: {
				Name:                BrainName,
				ObservationSize:     1,
				StackedObservations: 1,
				ActionSize:          1,
				ActionType:          brain.Continuous,
				ActionDescriptions:  []string{"moveDirection"},
			},
		},
		resetParams: map[string]float64{},
	}
}

// Step moves the agent by the clamped action amount and returns the
// resulting observation. A nil action set observes the current state
// without advancing it.
func (l *LineWorld) Step(actions stepinfo.Actions) (stepinfo.Observations, error) {
	if l.closed {
		return nil, fmt.Errorf("step: environment closed")
	}

	if info, ok := actions[BrainName]; ok && info.Action != nil &&
		info.Action.Len() > 0 {
		delta := clamp(info.Action.AtVec(0), -l.stepSize, l.stepSize)
		l.position = clamp(l.position+delta, -1, 1)
		l.stepCount++
	}

	done := l.position >= 1.0 || l.position <= -1.0
	reward := 0.0
	if done {
		reward = l.position
	}
	return l.observe(reward, done), nil
}

// Reset starts a new episode, applying any recognized randomized
// parameters from config. Unknown config keys are ignored.
func (l *LineWorld) Reset(config map[string]float64, trainMode bool,
	customResetParameters map[string]interface{}) (stepinfo.Observations, error) {
	if l.closed {
		return nil, fmt.Errorf("reset: environment closed")
	}

	if v, ok := config[StepSizeParam]; ok {
		l.stepSize = math.Abs(v)
	}
	if v, ok := config[InitialPositionParam]; ok {
		l.initialPosition = clamp(v, -1, 1)
	}

	l.resetParams = make(map[string]float64, len(config))
	for k, v := range config {
		l.resetParams[k] = v
	}

	l.position = l.initialPosition
	l.stepCount = 0
	return l.observe(0, false), nil
}

// GlobalDone reports whether the step budget since the last Reset is
// exhausted
func (l *LineWorld) GlobalDone() bool {
	return l.stepCount > l.maxSteps
}

// ExternalBrains returns the environment's single agent group
func (l *LineWorld) ExternalBrains() map[string]brain.Parameters {
	return l.brains
}

// ResetParameters returns the config applied by the last Reset
func (l *LineWorld) ResetParameters() map[string]float64 {
	return l.resetParams
}

// Close marks the environment unusable. Close is idempotent.
func (l *LineWorld) Close() error {
	l.closed = true
	return nil
}

func (l *LineWorld) observe(reward float64, done bool) stepinfo.Observations {
	obs := mat.NewVecDense(1, []float64{l.position})
	return stepinfo.Observations{
		BrainName: {
			{
				Observation:    obs,
				Reward:         reward,
				Done:           done,
				MaxStepReached: l.stepCount >= l.maxSteps,
			},
		},
	}
}

func clamp(value, min, max float64) float64 {
	return math.Max(math.Min(value, max), min)
}
