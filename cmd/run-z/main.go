// Command run-z is the CLI front-end wiring the task grammar parser, the
// option/syntax engine, the package model, the call planner, and the job
// executor into a runnable multi-package task runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/go-runz/runz/internal/attrs"
	"github.com/go-runz/runz/internal/ctxlog"
	"github.com/go-runz/runz/internal/executor"
	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/pkgmodel"
	"github.com/go-runz/runz/internal/planner"
	"github.com/go-runz/runz/internal/shell"
	"github.com/go-runz/runz/internal/syntax"
	"github.com/go-runz/runz/internal/taskparser"
	"github.com/go-runz/runz/internal/taskspec"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain is the whole program under test: it never itself calls os.Exit,
// so cmd/run-z/main_test.go can drive it against buffers.
func runMain(argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd(argv, stdout, stderr)
	if err := root.Execute(); err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	return 0
}

// newRootCmd builds the cobra command that owns run-z's help/usage text.
// Flag parsing itself is disabled: ambient flags and the task grammar share
// one token stream, and cobra's own pflag-based recognizer would corrupt
// grammar tokens shaped like "-a" or "//-a//" before the syntax engine ever
// sees them. Dogfooding the syntax engine for the CLI's own five ambient
// flags is the point of building it as a reusable, pluggable component in
// the first place.
func newRootCmd(argv []string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run-z [PACKAGES...] TASK [/ARG|//ARG//|,TASK|…]... [--OPT...]",
		Short:              "run-z runs named package scripts across a directory tree",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(cmd.Context(), argv, stdout, stderr)
		},
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func exitCode(err error) int {
	var unknownOpt *syntax.UnknownOption
	var invalidTask *taskparser.InvalidTask
	var unknownTask *planner.UnknownTask
	if errors.As(err, &unknownOpt) || errors.As(err, &invalidTask) || errors.As(err, &unknownTask) {
		return 2
	}
	return 1
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, wordwrap.WrapString("run-z: "+err.Error(), 100))
}

// runTask is the full pipeline: ambient flags → package discovery → task
// grammar → plan → execute → summary.
func runTask(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	amb, rest, err := parseAmbientFlags(argv)
	if err != nil {
		return err
	}

	logger := newLogger(amb, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	if len(rest) == 0 {
		return errors.New("no task given")
	}

	locator := manifest.NewDirLocator()
	cache, err := taskparser.NewCache(0)
	if err != nil {
		return fmt.Errorf("building task-spec cache: %w", err)
	}

	locations, err := locator.Locate(ctx, amb.cwd)
	if err != nil {
		return fmt.Errorf("discovering packages under %s: %w", amb.cwd, err)
	}
	packages, order, err := pkgmodel.BuildTree(ctx, locator, locations, cache)
	if err != nil {
		return err
	}

	rootLoc := manifest.Location(locator.Path(manifest.Location(amb.cwd)))
	rootPkg, ok := packages[rootLoc]
	if !ok {
		man, loadErr := locator.Load(ctx, rootLoc)
		if loadErr != nil {
			return fmt.Errorf("loading manifest at %s: %w", amb.cwd, loadErr)
		}
		rootPkg, err = pkgmodel.New(rootLoc, man, nil, cache)
		if err != nil {
			return err
		}
		packages[rootLoc] = rootPkg
		order = append(order, rootLoc)
	}

	pl := planner.New(locator, amb.cwd, cache)
	for _, loc := range order {
		pl.RegisterPackage(packages[loc])
	}

	sh := shell.NewOSShell(locator, cache)
	ex := executor.New(sh, amb.maxParallel)
	batcher := executor.NewBatcher(pl, ex)

	line := "run-z " + strings.Join(rest, " ")
	spec, err := cache.Parse(line)
	if err != nil {
		return err
	}

	var jobs []*executor.Job
	if targets, taskName, extraAttrs, extraArgs, ok := asBatch(spec, rootPkg, locator, packages, order); ok {
		jobs, err = batcher.Run(ctx, taskName, targets, extraAttrs, extraArgs)
	} else {
		entry := taskspec.NewTask(rootPkg, "<run-z>", spec)
		var plan *planner.Plan
		plan, err = pl.Plan(ctx, entry, nil, nil)
		if err == nil {
			jobs, err = ex.Run(ctx, plan)
		}
	}

	colorize := resolveColor(amb, stdout)
	executor.LogSummary(ctx, jobs, colorize)
	summaryOut := colorable.NewColorable(asFile(stdout))
	executor.PrintSummary(summaryOut, jobs, colorize)

	return err
}

// asBatch recognizes the "[PACKAGES...] TASK" shape: one or more leading
// PackageSelector prerequisites followed by exactly one TaskRef and nothing
// else. That shape is realized as a Batcher fan-out across every named
// package rather than the Group's usual sequential retarget, since the CLI
// surface names it as batching, not chaining.
func asBatch(spec taskspec.TaskSpec, root *pkgmodel.Package, locator manifest.Locator, packages map[manifest.Location]*pkgmodel.Package, order []manifest.Location) (targets []*pkgmodel.Package, taskName string, extraAttrs attrs.Attrs, extraArgs []string, ok bool) {
	if len(spec.Pre) < 2 {
		return nil, "", nil, nil, false
	}
	for _, p := range spec.Pre[:len(spec.Pre)-1] {
		if !p.IsPackageSelector() {
			return nil, "", nil, nil, false
		}
	}
	last := spec.Pre[len(spec.Pre)-1]
	if !last.IsTaskRef() {
		return nil, "", nil, nil, false
	}

	for _, p := range spec.Pre[:len(spec.Pre)-1] {
		pkg := resolveSelector(root, locator, packages, order, p.PackageSelector.Host)
		if pkg == nil {
			return nil, "", nil, nil, false
		}
		targets = append(targets, pkg)
	}

	extraAttrs = attrs.New()
	extraAttrs.Merge(spec.Attrs)
	extraAttrs.Merge(last.TaskRef.Attrs)
	extraArgs = append(append([]string(nil), last.TaskRef.Args...), spec.Args...)
	return targets, last.TaskRef.Task, extraAttrs, extraArgs, true
}

// resolveSelector resolves a PackageSelector host token against every
// already-discovered package, by relative path from root or by alias.
func resolveSelector(root *pkgmodel.Package, locator manifest.Locator, packages map[manifest.Location]*pkgmodel.Package, order []manifest.Location, host string) *pkgmodel.Package {
	if host == "." {
		return root
	}
	target := locator.Path(manifest.Location(joinLocation(string(root.Location()), host)))
	for _, loc := range order {
		if locator.Path(loc) == target {
			return packages[loc]
		}
	}
	for _, loc := range order {
		for _, alias := range packages[loc].Aliases() {
			if alias == host {
				return packages[loc]
			}
		}
	}
	return nil
}

func joinLocation(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return rel
	}
	return base + "/" + rel
}

// newLogger builds the run-z-wide *slog.Logger from the "--log-level" and
// "--log-format" ambient flags.
func newLogger(amb ambient, w io.Writer) *slog.Logger {
	var level slog.Level
	switch amb.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if amb.logFormat == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// resolveColor decides whether summary output should carry ANSI color
// codes: an explicit "--color"/"--no-color" ambient flag wins outright,
// otherwise it falls back to whether w looks like a real terminal.
func resolveColor(amb ambient, w io.Writer) bool {
	if amb.color {
		return true
	}
	if amb.noColor {
		return false
	}
	return isTTY(w)
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// asFile unwraps w to an *os.File for go-colorable's Windows ANSI
// translation, falling back to os.Stdout for non-file writers (tests).
func asFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return os.Stdout
}
