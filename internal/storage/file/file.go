package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/slok/reminder-sink/internal/log"
	"github.com/slok/reminder-sink/internal/model"
)

// RepositoryConfig is the configuration for the file silence repository.
type RepositoryConfig struct {
	// Path is the location of the silence file.
	Path   string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})

	return nil
}

// Repository stores silences in a plain text file, one "pattern:epoch" line
// per silence, the epoch being the expiration in Unix seconds. Writes are
// guarded with a sibling ".lock" file so concurrent processes can't corrupt
// the file.
type Repository struct {
	path   string
	lock   *flock.Flock
	logger log.Logger
}

// NewRepository creates a new file silence repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		path:   cfg.Path,
		lock:   flock.New(cfg.Path + ".lock"),
		logger: cfg.Logger,
	}, nil
}

// ListActiveSilences returns the silences that have not expired. A missing
// file means no silences, malformed lines are skipped with a warning.
func (r *Repository) ListActiveSilences(ctx context.Context) ([]model.Silence, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debugf("%s does not exist, no silences", r.path)
		return []model.Silence{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read silence file: %w", err)
	}

	now := time.Now()
	silences := []model.Silence{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		silence, err := parseLine(line)
		if err != nil {
			r.logger.Warningf("could not parse silence line %q: %s", line, err)
			continue
		}

		if !silence.Active(now) {
			r.logger.Debugf("silence %q expired at %s, skipping", silence.Pattern, silence.ExpiresAt)
			continue
		}

		silences = append(silences, silence)
	}

	return silences, nil
}

// AddSilence appends the silence to the file, creating it if needed.
func (r *Repository) AddSilence(ctx context.Context, silence model.Silence) error {
	if err := silence.Validate(); err != nil {
		return fmt.Errorf("invalid silence: %w", err)
	}

	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("could not lock silence file: %w", err)
	}
	defer func() { _ = r.lock.Unlock() }()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open silence file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s:%d\n", silence.Pattern, silence.ExpiresAt.Unix()); err != nil {
		return fmt.Errorf("could not write silence: %w", err)
	}

	r.logger.Debugf("silenced %q until %s", silence.Pattern, silence.ExpiresAt)

	return nil
}

// DeleteAllSilences removes the silence file. A missing file is not an error.
func (r *Repository) DeleteAllSilences(ctx context.Context) error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("could not lock silence file: %w", err)
	}
	defer func() { _ = r.lock.Unlock() }()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete silence file: %w", err)
	}

	return nil
}

// Autoprune deletes the silence file only when it exists, has content and
// none of its entries is active anymore.
func (r *Repository) Autoprune(ctx context.Context) error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("could not lock silence file: %w", err)
	}
	defer func() { _ = r.lock.Unlock() }()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debugf("%s does not exist, skipping prune", r.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read silence file: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		r.logger.Debugf("%s is empty, skipping prune", r.path)
		return nil
	}

	now := time.Now()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		silence, err := parseLine(line)
		if err != nil {
			continue
		}

		if silence.Active(now) {
			r.logger.Debugf("%s has active silences, skipping prune", r.path)
			return nil
		}
	}

	r.logger.Debugf("%s only has expired silences, deleting it", r.path)
	if err := os.Remove(r.path); err != nil {
		return fmt.Errorf("could not delete silence file: %w", err)
	}

	return nil
}

func parseLine(line string) (model.Silence, error) {
	pattern, epochStr, ok := strings.Cut(line, ":")
	if !ok {
		return model.Silence{}, fmt.Errorf("missing ':' separator")
	}

	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return model.Silence{}, fmt.Errorf("invalid expiration epoch: %w", err)
	}

	return model.Silence{Pattern: pattern, ExpiresAt: time.Unix(epoch, 0)}, nil
}
