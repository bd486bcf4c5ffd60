package results

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hpcloud/tail"
)

// FollowOptions controls journal following.
type FollowOptions struct {
	// FromStart replays the whole journal before following, instead of
	// only reporting records appended after the follower starts.
	FromStart bool
}

// Follow tails the journal, invoking fn for every record as it is
// appended. It blocks until ctx is done (returning nil), fn returns an
// error, or a journal line fails to decode. The journal does not need
// to exist yet; records appear as producers write them.
func (s *Store) Follow(ctx context.Context, opts FollowOptions, fn func(Record) error) error {
	// The tail watcher needs the parent directory to exist before the
	// journal does.
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}

	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Logger:    tail.DiscardingLogger,
	}
	if !opts.FromStart {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(s.JournalPath(), cfg)
	if err != nil {
		return fmt.Errorf("tailing journal: %w", err)
	}
	defer func() { _ = t.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				return fmt.Errorf("tailing journal: %w", line.Err)
			}
			if strings.TrimSpace(line.Text) == "" {
				continue
			}

			var rec Record
			if err := json.Unmarshal([]byte(line.Text), &rec); err != nil {
				return fmt.Errorf("journal entry %q: %w", line.Text, err)
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
	}
}
