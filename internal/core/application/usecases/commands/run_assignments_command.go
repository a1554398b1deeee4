package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRunAssignmentsCommandIsNotConstructed = errors.New(
	"RunAssignmentsCommand must be created via NewRunAssignmentsCommand constructor",
)

// RunAssignmentsCommand triggers a batch run over all pending orders.
// Orders are attempted in scheduled order, earliest first.
//
// Example:
//
//	cmd := NewRunAssignmentsCommand()
//	handler := NewRunAssignmentsCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("batch did not run: %v", err)
//	    return
//	}
//	log.Printf("processed %d orders, %d assigned", result.Processed, result.Succeeded)
type RunAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewRunAssignmentsCommand creates a new command to trigger a batch run.
// This is a parameterless command that processes every pending order.
func NewRunAssignmentsCommand() RunAssignmentsCommand {
	return RunAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RunAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrRunAssignmentsCommandIsNotConstructed)
}
