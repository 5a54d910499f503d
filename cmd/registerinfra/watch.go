package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nz-companies-register/infra/internal/lint"
	"github.com/nz-companies-register/infra/internal/synth"
	"github.com/nz-companies-register/infra/stacks"
)

// newWatchCmd creates the "watch" subcommand for auto-rebuilding on file changes.
func newWatchCmd() *cobra.Command {
	var (
		lintOnly  bool
		debounce  time.Duration
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "watch [packages...]",
		Short: "Auto-rebuild on source file changes",
		Long: `Watch monitors the stack declaration sources and rebuilds on change.

The watch command:
- Monitors the source directories for .go file changes
- Runs lint on each change
- Rebuilds the templates if lint passes (unless --lint-only)
- Debounces rapid changes to avoid excessive rebuilds

Examples:
    registerinfra watch
    registerinfra watch ./stacks/... --lint-only
    registerinfra watch --debounce 1s -o templates/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./stacks/..."}
			}
			return runWatch(args, watchOptions{
				lintOnly:  lintOnly,
				debounce:  debounce,
				outputDir: outputDir,
			})
		},
	}

	cmd.Flags().BoolVar(&lintOnly, "lint-only", false, "Only run lint, skip build")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for templates (default: none)")

	return cmd
}

type watchOptions struct {
	lintOnly  bool
	debounce  time.Duration
	outputDir string
}

// runWatch monitors source files and runs lint/build on changes.
func runWatch(packages []string, opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dirs, err := resolvePackageDirs(packages)
	if err != nil {
		return fmt.Errorf("failed to resolve packages: %w", err)
	}

	for _, dir := range dirs {
		if err := addDirRecursive(watcher, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		fmt.Printf("Watching: %s\n", dir)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Running initial lint/build...")
	runLintAndBuild(packages, opts)

	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, rebuilding...\n", time.Now().Format("15:04:05"))
			runLintAndBuild(packages, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// resolvePackageDirs converts package patterns to directory paths.
func resolvePackageDirs(packages []string) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)

	for _, pkg := range packages {
		pkg = strings.TrimSuffix(pkg, "/...")
		pkg = strings.TrimPrefix(pkg, "./")

		absPath, err := filepath.Abs(pkg)
		if err != nil {
			return nil, err
		}

		if !seen[absPath] {
			seen[absPath] = true
			dirs = append(dirs, absPath)
		}
	}

	return dirs, nil
}

// addDirRecursive adds a directory and all subdirectories to the watcher.
func addDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			if filepath.Base(path) == "vendor" {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// runLintAndBuild runs lint and optionally build on the packages.
func runLintAndBuild(packages []string, opts watchOptions) {
	if !runWatchLint(packages) {
		fmt.Println("Lint failed, skipping build")
		return
	}

	fmt.Println("Lint passed")

	if opts.lintOnly {
		return
	}

	runWatchBuild(opts)
}

// runWatchLint runs lint and returns true if no issues were found.
func runWatchLint(packages []string) bool {
	hasIssues := false
	for _, pkg := range packages {
		lintResult, err := lint.LintPackage(pkg, lint.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to lint %s: %v\n", pkg, err)
			continue
		}

		for _, issue := range lintResult.Issues {
			hasIssues = true
			if issue.File != "" {
				fmt.Printf("%s:%d:%d: %s: %s [%s]\n",
					issue.File, issue.Line, issue.Column,
					issue.Severity, issue.Message, issue.Rule)
			} else {
				fmt.Printf("%s: %s [%s]\n", issue.Severity, issue.Message, issue.Rule)
			}
		}
	}

	return !hasIssues
}

// runWatchBuild synthesizes the stacks and optionally writes the templates.
func runWatchBuild(opts watchOptions) {
	result, err := synth.New(stacks.All()...).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %v\n", err)
		return
	}

	resources := 0
	for _, tpl := range result.Templates {
		resources += len(tpl.Resources)
	}

	if opts.outputDir == "" {
		fmt.Println("Build successful")
		fmt.Printf("Generated %d stacks, %d resources\n", len(result.Order), resources)
		return
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output dir: %v\n", err)
		return
	}
	for _, name := range result.Order {
		data, err := synth.ToJSON(result.Templates[name])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
			return
		}
		path := filepath.Join(opts.outputDir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			return
		}
	}
	fmt.Printf("Build successful, wrote %d templates to %s\n", len(result.Order), opts.outputDir)
}
