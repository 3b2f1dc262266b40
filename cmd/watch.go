package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/internal/adapters/source"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the library whenever an SVG changes",
	Long: `Watch the library directories and drop the cached library as soon as an
SVG is created, modified, renamed or deleted, so the next lookup reads the
files again.

Each reload is validated and invalid files are reported.

Use --quiet to suppress reload notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress reload notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext(cmd)
	out := cmd.OutOrStdout()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range libraryDirs {
		n, err := watchTree(watcher, dir)
		if err != nil {
			return err
		}
		watched += n
	}
	if watched == 0 {
		return fmt.Errorf("none of the library directories exist: %s", strings.Join(libraryDirs, ", "))
	}

	if !watchQuiet {
		fmt.Fprintln(out, ui.StylePrimary.Render(ui.IconWatch+" Watching SVG library..."))
		for _, dir := range libraryDirs {
			fmt.Fprintln(out, ui.FormatMuted("  "+dir))
		}
		fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Fprintln(out)
	}

	// Initial load so the first report has something to compare against
	reloadLibrary(ctx, out)

	// Stopped before the deferred watcher.Close and before shutdownApp
	// closes the cache store
	reloads := newDebouncer(appConfig.WatchDebounce(), func() {
		if ctx.Err() != nil {
			return
		}
		reloadLibrary(ctx, out)
	})
	defer reloads.Stop()
	schedule := reloads.Trigger

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			// New directories may already hold SVGs
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if _, err := watchTree(watcher, event.Name); err != nil {
						appLogger.Warn("Failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
					schedule()
					continue
				}
			}

			if !source.IsSVG(event.Name) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {
				appLogger.Debug("Library change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("Watcher error", zap.Error(err))

		case <-ctx.Done():
			reloads.Stop()
			if !watchQuiet {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// debouncer runs fn once triggers stop arriving for delay
type debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	running sync.WaitGroup
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

// Trigger (re)starts the delay. It is a no-op after Stop.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil && d.timer.Stop() {
		d.running.Done()
	}
	d.running.Add(1)
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Stop cancels a pending run and waits for a run already in progress.
// It is safe to call more than once.
func (d *debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.running.Done()
	}
	d.timer = nil
	d.mu.Unlock()

	d.running.Wait()
}

func (d *debouncer) fire() {
	defer d.running.Done()

	d.mu.Lock()
	stopped := d.stopped
	d.mu.Unlock()
	if stopped {
		return
	}
	d.fn()
}

// watchTree adds root and every directory below it. A missing root is
// skipped and counts as zero.
func watchTree(watcher *fsnotify.Watcher, root string) (int, error) {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

func reloadLibrary(ctx context.Context, out io.Writer) {
	if err := libraryService.Reload(ctx); err != nil {
		appLogger.Warn("Failed to drop cached library", zap.Error(err))
	}

	start := time.Now()
	entries, err := libraryService.ListAll(ctx)
	if err != nil {
		if !watchQuiet {
			fmt.Fprintln(out, ui.FormatError("Reload failed: "+err.Error()))
		}
		appLogger.Error("Reload failed", zap.Error(err))
		return
	}

	invalid := 0
	for _, e := range entries {
		if len(e.Errors) > 0 {
			invalid++
			if !watchQuiet {
				fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("%s: %s", e.Identifier, strings.Join(e.Errors, "; "))))
			}
		}
	}

	if !watchQuiet {
		msg := fmt.Sprintf("Library reloaded (%d SVGs in %s)", len(entries), time.Since(start).Round(time.Millisecond))
		if invalid > 0 {
			msg += fmt.Sprintf(", %d invalid", invalid)
		}
		fmt.Fprintln(out, ui.FormatSuccess(msg))
	}
}
