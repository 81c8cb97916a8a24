// Package watch runs the periodic conflict scan daemon: on each scheduled
// tick it rebuilds a snapshot from the record store, runs the conflict
// detector, persists the scan history, and notifies operators when
// high-severity conflicts are present.
package watch

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/skyops/airboss/internal/conflict"
	"github.com/skyops/airboss/internal/models"
	"github.com/skyops/airboss/internal/notify"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
	"gorm.io/gorm"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// nextCronDuration parses a 5-field cron expression and returns the duration
// until the next fire time.
func nextCronDuration(expr string, from time.Time) (time.Duration, error) {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0, fmt.Errorf("watch: parse schedule %q: %w", expr, err)
	}
	d := sched.Next(from).Sub(from)
	if d < 0 {
		d = 0
	}
	return d, nil
}

// Opts holds parameters for the watch daemon.
type Opts struct {
	DB       *gorm.DB
	Store    store.Store
	Schedule string // 5-field cron expression
	Notifier notify.Notifier
	Out      io.Writer
}

// Run loops until ctx is cancelled, scanning on the configured schedule.
// A failed scan is logged and the loop continues: partial failure of the
// record store must not kill the daemon.
func Run(ctx context.Context, opts Opts) error {
	if opts.DB == nil {
		return fmt.Errorf("watch: db is required")
	}
	if opts.Store == nil {
		return fmt.Errorf("watch: store is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if _, err := cronParser.Parse(opts.Schedule); err != nil {
		return fmt.Errorf("watch: parse schedule %q: %w", opts.Schedule, err)
	}

	fmt.Fprintf(opts.Out, "Watch daemon starting (schedule %q)...\n", opts.Schedule)

	for {
		wait, err := nextCronDuration(opts.Schedule, time.Now())
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			fmt.Fprintln(opts.Out, "Watch daemon stopped.")
			return nil
		case <-time.After(wait):
		}

		rec, err := Scan(opts.DB, opts.Store, opts.Notifier, time.Now())
		if err != nil {
			log.Printf("watch: scan error: %v", err)
			continue
		}
		fmt.Fprintf(opts.Out, "Scan at %s: %d conflicts (%d high, %d medium)\n",
			rec.RanAt.Format(time.RFC3339), rec.Total, rec.High, rec.Medium)
	}
}

// Scan runs one detection pass: load, detect, persist, notify. The returned
// record reflects what was persisted.
func Scan(db *gorm.DB, st store.Store, notifier notify.Notifier, now time.Time) (*models.ScanRecord, error) {
	snap, err := snapshot.FromStore(st)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	conflicts := conflict.Detect(snap, now)

	rec := &models.ScanRecord{RanAt: now, Total: len(conflicts)}
	for _, c := range conflicts {
		switch c.Severity {
		case conflict.SeverityHigh:
			rec.High++
		case conflict.SeverityMedium:
			rec.Medium++
		case conflict.SeverityLow:
			rec.Low++
		}
	}

	if err := db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("watch: persist scan: %w", err)
	}
	for _, c := range conflicts {
		event := models.ConflictEvent{
			ScanID:         rec.ID,
			Type:           string(c.Type),
			Severity:       string(c.Severity),
			Description:    c.Description,
			AffectedEntity: c.AffectedEntity,
			Details:        conflict.DetailsJSON(c),
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("watch: persist conflict event: %v", err)
		}
	}

	if rec.High > 0 && notifier != nil {
		subject, body := notify.Digest(conflicts)
		if err := notifier.Notify(subject, body); err != nil {
			log.Printf("watch: notify: %v", err)
		}
	}
	return rec, nil
}
