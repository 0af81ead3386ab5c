package lib

import (
	"context"
	"fmt"
	"time"

	appsilenceadd "github.com/slok/reminder-sink/internal/app/silenceadd"
	appsilencelist "github.com/slok/reminder-sink/internal/app/silencelist"
	appsilencereset "github.com/slok/reminder-sink/internal/app/silencereset"
)

// Silence hides the reminders matching pattern from run reports for the
// given duration.
//
// The pattern matches whole report entries, script names for name entries
// and single lines for output entries, and supports glob wildcards
// ("weight", "buy-*", "*"). Fatal script failures are never silenced.
//
// Returns [ErrNotValid] when the pattern is malformed or the duration is
// not positive.
func (c *Client) Silence(ctx context.Context, pattern string, duration time.Duration) (*Silence, error) {
	svc, err := appsilenceadd.NewService(appsilenceadd.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	silence, err := svc.Run(ctx, appsilenceadd.Request{
		Pattern:  pattern,
		Duration: duration,
	})
	if err != nil {
		return nil, mapError(err)
	}

	mapped := fromInternalSilence(*silence)
	return &mapped, nil
}

// ActiveSilences returns the silences that have not expired yet.
func (c *Client) ActiveSilences(ctx context.Context) ([]Silence, error) {
	svc, err := appsilencelist.NewService(appsilencelist.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	silences, err := svc.Run(ctx, appsilencelist.Request{})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalSilenceList(silences), nil
}

// ResetSilences removes stored silences.
//
// By default every silence is removed, expired or not. With
// [ResetSilencesOpts].OnlyExpired the store is only cleared when no silence
// is active anymore.
func (c *Client) ResetSilences(ctx context.Context, opts *ResetSilencesOpts) error {
	svc, err := appsilencereset.NewService(appsilencereset.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	var onlyExpired bool
	if opts != nil {
		onlyExpired = opts.OnlyExpired
	}

	err = svc.Run(ctx, appsilencereset.Request{OnlyExpired: onlyExpired})
	if err != nil {
		return mapError(err)
	}

	return nil
}
