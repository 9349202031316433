package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const rebuildDelay = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [inputs...]",
	Short: "Regenerate components whenever SVG files change",
	Long: `Run generate once, then watch the input directories and run it again
after every change to an .svg file. Stop with Ctrl+C.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	addGenerateFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	config, err := buildGenerateConfig(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		// Failures are already reported per file; keep watching
		if err := runGenerate(cmd, config.Inputs); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
	}
	rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(config.Inputs, config.Recursive)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes\n", strings.Join(dirs, ", "))
	return watchLoop(ctx, watcher, rebuildDelay, cmd.ErrOrStderr(), rebuild)
}

// watchLoop calls rebuild once changes to .svg files settle for delay.
// It returns when ctx is done or the watcher is closed.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, delay time.Duration, errOut io.Writer, rebuild func()) error {
	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				// New subdirectories are watched too
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
					continue
				}
			}
			if isSVGEvent(event) {
				timer.Reset(delay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch error: %v\n", err)

		case <-timer.C:
			rebuild()
		}
	}
}

// isSVGEvent reports whether an event can change the generated output
func isSVGEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".svg") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// watchDirs returns the directories to watch for the given inputs: each
// directory input (and its subdirectories when recursive) and the parent
// directory of each file or pattern.
func watchDirs(inputs []string, recursive bool) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, input := range inputs {
		if strings.ContainsAny(input, "*?[{") {
			add(globBase(input))
			continue
		}
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("watching %s: %w", input, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(input))
			continue
		}
		if !recursive {
			add(input)
			continue
		}
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "node_modules" {
					return filepath.SkipDir
				}
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("watching %s: %w", input, err)
		}
	}
	return dirs, nil
}

// globBase is the longest leading directory of a pattern without meta characters
func globBase(pattern string) string {
	parts := strings.Split(filepath.ToSlash(pattern), "/")
	var base []string
	for _, p := range parts {
		if strings.ContainsAny(p, "*?[{") {
			break
		}
		base = append(base, p)
	}
	if len(base) == 0 {
		return "."
	}
	if len(base) == 1 && base[0] == "" {
		return "/"
	}
	return filepath.FromSlash(strings.Join(base, "/"))
}
