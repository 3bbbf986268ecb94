package provider

import (
	"context"
	"errors"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Common errors
var (
	ErrNotImplemented = errors.New("operation not implemented")
	ErrBadStatus      = errors.New("unexpected response status")
	ErrAborted        = errors.New("aborted")
)

// Action names an instance mutation
type Action string

const (
	ActionStart     Action = "start"
	ActionStop      Action = "stop"
	ActionTerminate Action = "terminate"
)

// InstanceLister fetches every raw instance record visible to the caller
type InstanceLister interface {
	// DescribeAllInstances returns the instances of all reservations, in order
	DescribeAllInstances(ctx context.Context) ([]ec2types.Instance, error)

	// Region returns the region the lister queries
	Region() string
}

// InstanceMutator changes the lifecycle state of instances
type InstanceMutator interface {
	Start(ctx context.Context, ids []string) error
	Stop(ctx context.Context, ids []string) error
	Terminate(ctx context.Context, ids []string) error
}

// Mutate dispatches an action to the matching mutator method
func Mutate(ctx context.Context, m InstanceMutator, action Action, ids []string) error {
	switch action {
	case ActionStart:
		return m.Start(ctx, ids)
	case ActionStop:
		return m.Stop(ctx, ids)
	case ActionTerminate:
		return m.Terminate(ctx, ids)
	default:
		return ErrNotImplemented
	}
}
