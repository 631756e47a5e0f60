package main

import (
	"fmt"
	"log"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jfwhite/gorollout/agent"
	"github.com/jfwhite/gorollout/envmanager"
	"github.com/jfwhite/gorollout/environment"
	"github.com/jfwhite/gorollout/environment/lineworld"
	"github.com/jfwhite/gorollout/sampler"
	"github.com/jfwhite/gorollout/stepinfo"
)

func main() {
	var seed uint64 = 192382

	// Randomize the line world between episodes: the starting
	// position comes from a uniform distribution and the step size
	// from a union of a slow and a fast band.
	samplerConfig := sampler.Config{
		lineworld.InitialPositionParam: {
			"sampler-type": "uniform",
			"min_value":    -0.5,
			"max_value":    0.5,
		},
		lineworld.StepSizeParam: {
			"sampler-type": "multirange_uniform",
			"intervals":    [][]float64{{0.05, 0.1}, {0.2, 0.4}},
		},
	}
	samplers, err := sampler.NewManager(samplerConfig, seed)
	if err != nil {
		log.Fatal(err)
	}

	// A policy that moves in a uniformly random direction each step
	actionDist := distuv.Uniform{Min: -1, Max: 1, Src: rand.NewSource(seed)}
	policy := agent.PolicyFunc(func(obs stepinfo.Observations) (stepinfo.Actions, error) {
		actions := make(stepinfo.Actions, len(obs))
		for name := range obs {
			actions[name] = stepinfo.ActionInfo{
				Action: mat.NewVecDense(1, []float64{actionDist.Rand()}),
			}
		}
		return actions, nil
	})

	envs := []environment.Environment{
		lineworld.New(1000),
		lineworld.New(1000),
	}
	manager, err := envmanager.NewLocal(policy, envs,
		envmanager.WithSamplerManager(samplers))
	if err != nil {
		log.Fatal(err)
	}
	defer manager.Close()

	fmt.Println("Brains:", manager.ExternalBrains())
	fmt.Println("Initial reset parameters:", manager.ResetParameters())

	autoResets := 0
	for cycle := 0; cycle < 5000; cycle++ {
		steps, err := manager.Step()
		if err != nil {
			log.Fatal(err)
		}
		for _, step := range steps {
			// A nil action set marks an auto-reset: the environment
			// exhausted its step budget and a new randomized episode
			// began.
			if step.Actions == nil {
				autoResets++
			}
		}
	}

	fmt.Println("Auto-resets:", autoResets)
	fmt.Println("Last reset parameters:", manager.ResetParameters())
}
