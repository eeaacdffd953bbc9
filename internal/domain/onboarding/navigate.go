package onboarding

import "errors"

// ErrStepIncomplete is the caller-visible rejection signal when forward
// navigation is attempted on an incomplete step.
var ErrStepIncomplete = errors.New("current step is incomplete")

// Navigator layers transition rules over a Store. The wizard graph is a
// strict linear chain of six steps; forward movement is gated on step
// completeness, backward movement is unconditional.
type Navigator struct {
	Store *Store
	Geo   GeoLookup

	// OnTransition, when set, is invoked with the new current step after
	// every successful navigation. Views hook routing here.
	OnTransition func(Step)
}

func NewNavigator(store *Store, geo GeoLookup) *Navigator {
	return &Navigator{Store: store, Geo: geo}
}

// CanAdvance reports whether the current step passes validation.
func (n *Navigator) CanAdvance() bool {
	return StepComplete(n.Store.CurrentStep(), n.Store.Record(), n.Geo)
}

// GoNext marks the current step completed and advances, or rejects with
// ErrStepIncomplete leaving all state untouched.
func (n *Navigator) GoNext() error {
	if !n.CanAdvance() {
		return ErrStepIncomplete
	}
	n.Store.MarkStepCompleted(n.Store.CurrentStep())
	n.Store.Advance()
	n.transition()
	return nil
}

// GoPrevious retreats unconditionally.
func (n *Navigator) GoPrevious() {
	n.Store.Retreat()
	n.transition()
}

// GoTo jumps directly to step (stepper-node click). The store does not gate
// direct navigation.
func (n *Navigator) GoTo(step Step) {
	n.Store.SetCurrentStep(step)
	n.transition()
}

func (n *Navigator) transition() {
	if n.OnTransition != nil {
		n.OnTransition(n.Store.CurrentStep())
	}
}
