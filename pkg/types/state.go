package types

import (
	"fmt"
	"slices"
	"strings"
)

// State is the lifecycle state of an instance
type State string

const (
	StatePending      State = "pending"
	StateRunning      State = "running"
	StateShuttingDown State = "shutting-down"
	StateTerminated   State = "terminated"
	StateStopping     State = "stopping"
	StateStopped      State = "stopped"

	// StateAll is the wildcard state filter value
	StateAll State = "all"
)

// States lists every concrete instance state
var States = []State{
	StatePending,
	StateRunning,
	StateShuttingDown,
	StateTerminated,
	StateStopping,
	StateStopped,
}

// FilterValues lists the accepted values of a state filter, wildcard first
func FilterValues() []string {
	values := []string{string(StateAll)}
	for _, s := range States {
		values = append(values, string(s))
	}
	return values
}

// IsValid returns true if s is a concrete state
func (s State) IsValid() bool {
	return slices.Contains(States, s)
}

// HasReason returns true if instances in this state carry a state reason
func (s State) HasReason() bool {
	return s != StateRunning && s != StatePending
}

// StateFilter is a deduplicated, ascending set of requested states
type StateFilter []State

// ParseStateFilter validates the requested values and normalizes them.
// An empty request means all states.
func ParseStateFilter(values []string) (StateFilter, error) {
	if len(values) == 0 {
		return StateFilter{StateAll}, nil
	}

	filter := make(StateFilter, 0, len(values))
	for _, v := range values {
		s := State(strings.TrimSpace(v))
		if s != StateAll && !s.IsValid() {
			return nil, fmt.Errorf("invalid state %q (valid: %s)", v, strings.Join(FilterValues(), ", "))
		}
		filter = append(filter, s)
	}

	slices.Sort(filter)
	return slices.Compact(filter), nil
}

// Matches returns true if an instance in the given state passes the filter
func (f StateFilter) Matches(s State) bool {
	return slices.Contains(f, StateAll) || slices.Contains(f, s)
}

// String joins the filter values for messages
func (f StateFilter) String() string {
	parts := make([]string, len(f))
	for i, s := range f {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
