package commands

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/internal/tabfile"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a tableau file",
		Long: `Print the tableau stored in a YAML file.

With --watch the tableau is printed again every time the file is written,
which pairs well with an editor open on the same file.`,
		Example: `  pivotlab show plan.yaml
  pivotlab show plan.yaml -o json
  pivotlab show plan.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print again whenever the file changes")

	return cmd
}

func runShow(cmd *cobra.Command, path string, watch bool) error {
	cc := NewCommandContext(cmd)
	if err := showFile(cc, path); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	cc.Logger.Info("watching for changes", "file", path)

	return watchLoop(cmd.Context(), watcher, path, watchDebounce, cc.Logger, func() {
		if err := showFile(cc, path); err != nil {
			cc.Renderer.Warnf("%v", err)
		}
	})
}

func showFile(cc *CommandContext, path string) error {
	t, doc, err := tabfile.Load(path)
	if err != nil {
		return err
	}
	title := doc.Name
	if title == "" {
		title = filepath.Base(path)
	}

	return cc.Renderer.Tableau(t, render.TableauOptions{Title: title})
}

// newFileWatcher watches the directory holding path, so atomic saves that
// replace the file are still seen.
func newFileWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()

		return nil, err
	}

	return watcher, nil
}

// watchLoop calls onChange, debounced by delay, after every write to path.
// onChange runs on the calling goroutine. watchLoop returns when ctx is done
// or the watcher is closed.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, delay time.Duration,
	logger *slog.Logger, onChange func()) error {
	base := filepath.Base(path)

	fire := make(chan string, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case name := <-fire:
			logger.Debug("file changed", "file", name)
			onChange()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Base(event.Name) != base {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(delay, func() {
				select {
				case fire <- event.Name:
				default: // a reload is already queued
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
