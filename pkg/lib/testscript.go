package lib

import (
	"context"
	"fmt"

	apptestscript "github.com/slok/reminder-sink/internal/app/testscript"
)

// TestScript executes a single reminder script and returns its result,
// ignoring the enabled state and any active silence. The path may use "~"
// for the home directory.
//
// Use this to check what a script would report before wiring it into a
// search directory.
//
// Returns [ErrNotFound] if the script file does not exist, or [ErrNotValid]
// if the path is empty or a directory.
func (c *Client) TestScript(ctx context.Context, path string) (*ExecutionResult, error) {
	svc, err := apptestscript.NewService(apptestscript.ServiceConfig{
		Runner: c.runner,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	result, err := svc.Run(ctx, apptestscript.Request{Path: path})
	if err != nil {
		return nil, mapError(err)
	}

	mapped := fromInternalResult(*result)
	return &mapped, nil
}
