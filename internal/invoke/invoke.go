// Package invoke assembles and runs the external builder commands. All
// decisions have been made by the time a Runner exists; this layer only
// translates a BuildConfig into argv vectors and waits for the child.
package invoke

import (
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
)

// Runner executes builder actions and pdebuild builds for one resolved
// configuration.
type Runner struct {
	Config *gitpbuilder.BuildConfig

	// OutputDir is where pdebuild places build results (--buildresult).
	OutputDir string

	// PdebuildOptions are passed to pdebuild itself, before the -- options.
	PdebuildOptions []string

	// Stdout and Stderr default to the process streams. Tests override
	// them.
	Stdout io.Writer
	Stderr io.Writer
}

// ActionArgs returns the argv for `sudo <builder> --<action> ...`. Extra
// args come after the resolved options so users can override them.
func (r *Runner) ActionArgs(action string, args []string) []string {
	argv := []string{"sudo", string(r.Config.Builder), "--" + action}
	argv = append(argv, r.Config.ExtraOptions...)
	return append(argv, args...)
}

// BuildArgs returns the argv for the pdebuild invocation that gbp
// buildpackage expects. args are dpkg-buildpackage options and end up in
// --debbuildopts together with the etch workaround when needed.
func (r *Runner) BuildArgs(args []string) []string {
	debbuildopts := args
	if r.Config.EtchWorkaround {
		debbuildopts = append([]string{"--debian-etch-workaround"}, args...)
	}
	argv := []string{"pdebuild", "--buildresult", r.OutputDir, "--pbuilder", string(r.Config.Builder)}
	if len(debbuildopts) > 0 {
		argv = append(argv, "--debbuildopts", strings.Join(debbuildopts, " "))
	}
	argv = append(argv, r.PdebuildOptions...)
	if len(r.Config.ExtraOptions) > 0 {
		argv = append(argv, "--")
		argv = append(argv, r.Config.ExtraOptions...)
	}
	return argv
}

// Action runs a builder action (update, create, login) under sudo.
func (r *Runner) Action(ctx context.Context, action string, args []string) error {
	if _, err := exec.LookPath(string(r.Config.Builder)); err != nil {
		return xerrors.Errorf("%s is not installed: %v", r.Config.Builder, err)
	}
	return r.run(ctx, r.ActionArgs(action, args))
}

// Build runs pdebuild, creating the output directory first if needed.
func (r *Runner) Build(ctx context.Context, args []string) error {
	if _, err := exec.LookPath(string(r.Config.Builder)); err != nil {
		return xerrors.Errorf("%s is not installed: %v", r.Config.Builder, err)
	}
	if _, err := exec.LookPath("pdebuild"); err != nil {
		return xerrors.Errorf("pdebuild is not installed: %v", err)
	}
	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return xerrors.Errorf("output dir %s: %v", r.OutputDir, err)
	}

	logFile, err := os.Create(filepath.Join(r.OutputDir, "git-pbuilder.log"))
	if err != nil {
		return xerrors.Errorf("build log: %v", err)
	}
	defer logFile.Close()

	argv := r.BuildArgs(args)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	log.Printf("building with %v", cmd.Args)
	cmd.Stdin = os.Stdin // pbuilder hooks may prompt
	cmd.Stdout = io.MultiWriter(r.stdout(), logFile)
	cmd.Stderr = io.MultiWriter(r.stderr(), logFile)
	if err := cmd.Run(); err != nil {
		return xerrors.Errorf("%v: %w", cmd.Args, err)
	}
	return nil
}

func (r *Runner) run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	log.Printf("running %v", cmd.Args)
	cmd.Stdin = os.Stdin // sudo password prompt, login shells
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	if err := cmd.Run(); err != nil {
		return xerrors.Errorf("%v: %w", cmd.Args, err)
	}
	return nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// ExitCode extracts the child's exit code from an error returned by Action
// or Build, so the wrapper can exit the same way the builder did. Errors
// that did not come from a child process report -1.
func ExitCode(err error) int {
	var exit *exec.ExitError
	if xerrors.As(err, &exit) {
		return exit.ExitCode()
	}
	return -1
}
