package aws

import (
	"context"
	"fmt"

	"github.com/kandula/kancli/pkg/provider"
)

// PendingMutator is the InstanceMutator for EC2. None of the actions are
// implemented yet; each reports the instances it would have touched.
type PendingMutator struct{}

var _ provider.InstanceMutator = PendingMutator{}

// Start would call StartInstances
func (PendingMutator) Start(ctx context.Context, ids []string) error {
	return notImplemented(provider.ActionStart, ids)
}

// Stop would call StopInstances
func (PendingMutator) Stop(ctx context.Context, ids []string) error {
	return notImplemented(provider.ActionStop, ids)
}

// Terminate would call TerminateInstances
func (PendingMutator) Terminate(ctx context.Context, ids []string) error {
	return notImplemented(provider.ActionTerminate, ids)
}

func notImplemented(action provider.Action, ids []string) error {
	return fmt.Errorf("%s %d instance(s) %v: %w", action, len(ids), ids, provider.ErrNotImplemented)
}
