package domain

import (
	"sync"

	"github.com/fraservotes/console/internal/route"
)

// State of an onboarding flow.
type State string

const (
	StateLoading   State = "loading"
	StateStep      State = "step"
	StateCompleted State = "completed"
)

// LoadingMessage is shown while step assets are preloading.
const LoadingMessage = "Loading onboarding..."

// Effect is what a transition asks the caller to do. Completed is set exactly
// once per flow, on the transition into StateCompleted.
type Effect struct {
	Completed bool
	Navigate  *route.Navigation
}

// Snapshot is a copy of the flow state at one point in time.
type Snapshot struct {
	State     State
	StepIndex int
	StepCount int
	Step      *Step
}

// IsLastStep reports whether the snapshot shows the final step.
func (s Snapshot) IsLastStep() bool {
	return s.State == StateStep && s.StepIndex == s.StepCount-1
}

// Flow is the linear onboarding state machine. It is safe for concurrent use.
type Flow struct {
	mu    sync.Mutex
	steps []Step
	state State
	index int
}

// NewFlow creates a flow in StateLoading over steps.
func NewFlow(steps []Step) *Flow {
	return &Flow{steps: steps, state: StateLoading}
}

// CompletedSnapshot describes a device that already finished onboarding.
func CompletedSnapshot(stepCount int) Snapshot {
	return Snapshot{State: StateCompleted, StepCount: stepCount}
}

// AssetsSettled moves a loading flow to the first step. It reports whether a
// transition happened. A flow without steps completes instead.
func (f *Flow) AssetsSettled() (Effect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateLoading {
		return Effect{}, false
	}
	if len(f.steps) == 0 {
		return f.completeLocked(), true
	}
	f.state = StateStep
	f.index = 0
	return Effect{}, true
}

// Next advances one step, completing the flow from the last step.
func (f *Flow) Next() (Effect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateLoading:
		return Effect{}, ErrNotReady
	case StateCompleted:
		return Effect{}, nil
	}

	if f.index < len(f.steps)-1 {
		f.index++
		return Effect{}, nil
	}
	return f.completeLocked(), nil
}

// Skip completes the flow from any step.
func (f *Flow) Skip() (Effect, error) {
	return f.finishFromStep()
}

// Close completes the flow from any step.
func (f *Flow) Close() (Effect, error) {
	return f.finishFromStep()
}

// Complete forces the flow into StateCompleted from any state. Repeated calls
// yield an empty effect.
func (f *Flow) Complete() Effect {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateCompleted {
		return Effect{}
	}
	return f.completeLocked()
}

// Snapshot returns a copy of the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{State: f.state, StepCount: len(f.steps)}
	if f.state == StateStep {
		step := f.steps[f.index]
		snap.StepIndex = f.index
		snap.Step = &step
	}
	return snap
}

func (f *Flow) finishFromStep() (Effect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateLoading:
		return Effect{}, ErrNotReady
	case StateCompleted:
		return Effect{}, nil
	}
	return f.completeLocked(), nil
}

func (f *Flow) completeLocked() Effect {
	f.state = StateCompleted
	f.index = 0
	nav := route.ReplaceWith(route.Home)
	return Effect{Completed: true, Navigate: &nav}
}
