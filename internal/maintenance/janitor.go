// Package maintenance runs the periodic housekeeping for the
// file-backed store: hourly snapshots of the storage files into
// <data_dir>/backups with a bounded retention.
package maintenance

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor snapshots the jsonstore collections on a schedule.
type Janitor struct {
	dataDir string
	keep    int
	cron    *cron.Cron
}

// NewJanitor creates a janitor retaining the keep most recent snapshots.
func NewJanitor(dataDir string, keep int) *Janitor {
	return &Janitor{dataDir: dataDir, keep: keep}
}

// Start schedules the hourly snapshot job.
func (j *Janitor) Start() {
	j.cron = cron.New()
	if _, err := j.cron.AddFunc("@hourly", func() {
		if err := j.Run(); err != nil {
			log.Printf("[error] operation=snapshot error=%v", err)
		}
	}); err != nil {
		log.Printf("[error] operation=janitor_start error=%v", err)
		return
	}
	log.Printf("[info] operation=janitor_start message=hourly storage snapshots enabled keep=%d", j.keep)
	j.cron.Start()
}

// Stop halts the schedule; a running snapshot finishes first.
func (j *Janitor) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

// Run takes one snapshot and prunes old ones.
func (j *Janitor) Run() error {
	src := filepath.Join(j.dataDir, "storage")
	dst := filepath.Join(j.dataDir, "backups", time.Now().UTC().Format("20060102T150405"))
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read storage dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dst, entry.Name()), raw, 0o644); err != nil {
			return fmt.Errorf("write snapshot %s: %w", entry.Name(), err)
		}
	}

	return j.Prune()
}

// Prune removes snapshots beyond the retention count, oldest first.
// Snapshot directory names sort chronologically.
func (j *Janitor) Prune() error {
	root := filepath.Join(j.dataDir, "backups")
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= j.keep {
		return nil
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-j.keep] {
		if err := os.RemoveAll(filepath.Join(root, name)); err != nil {
			return fmt.Errorf("prune snapshot %s: %w", name, err)
		}
	}
	return nil
}
