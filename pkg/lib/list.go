package lib

import (
	"context"
	"fmt"

	applist "github.com/slok/reminder-sink/internal/app/list"
)

// ListScripts returns the reminder scripts discovered in the configured
// search directories, sorted by file name within each directory.
//
// Pass nil opts to list every script, enabled or not.
//
// Returns [ErrNotValid] when no search directories are configured.
func (c *Client) ListScripts(ctx context.Context, opts *ListScriptsOpts) ([]Script, error) {
	svc, err := applist.NewService(applist.ServiceConfig{
		Scanner: c.scanner,
		Logger:  c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var onlyEnabled bool
	if opts != nil {
		onlyEnabled = opts.OnlyEnabled
	}

	scripts, err := svc.Run(ctx, applist.Request{
		Dirs:        c.searchDirs,
		OnlyEnabled: onlyEnabled,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalScriptList(scripts), nil
}
