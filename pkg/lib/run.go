package lib

import (
	"context"
	"fmt"

	apprun "github.com/slok/reminder-sink/internal/app/run"
)

// Run executes the enabled reminder scripts of the configured search
// directories and returns the aggregated report.
//
// Scripts run in parallel up to the configured worker count. The returned
// report is already filtered by the active silences and its status follows
// the script exit code contract: fatal script failures win over expired
// reminders.
//
// Pass nil opts for defaults (no autoprune).
//
// Returns [ErrNotValid] when no search directories are configured.
func (c *Client) Run(ctx context.Context, opts *RunOpts) (*Report, error) {
	svc, err := apprun.NewService(apprun.ServiceConfig{
		Scanner:    c.scanner,
		Runner:     c.runner,
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var autoprune bool
	if opts != nil {
		autoprune = opts.Autoprune
	}

	rep, err := svc.Run(ctx, apprun.Request{
		Dirs:      c.searchDirs,
		Autoprune: autoprune,
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalReport(rep)
	return &result, nil
}
