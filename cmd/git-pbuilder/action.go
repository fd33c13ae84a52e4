package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/xerrors"

	"github.com/gbp-tools/git-pbuilder/internal/config"
	"github.com/gbp-tools/git-pbuilder/internal/env"
	"github.com/gbp-tools/git-pbuilder/internal/invoke"
)

const actionHelp = `git-pbuilder update|create|login [builder options]

Run the corresponding builder action under sudo against the resolved chroot
base image. Additional options are passed to the builder as-is.

Example:
  % DIST=squeeze git-pbuilder create
  % DIST=squeeze git-pbuilder update -- --override-config
`

func runAction(ctx context.Context, action string, args []string) error {
	// Options after the verb belong to the builder, so no flag parsing
	// happens here. A conventional leading -- separator is dropped.
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if action == "login" && !isatty.IsTerminal(os.Stdin.Fd()) {
		return xerrors.New("login requires a terminal on stdin")
	}

	cfg, err := config.Resolve(os.Args[0], env.FromEnviron(), action == "create")
	if err != nil {
		return err
	}
	r := &invoke.Runner{Config: cfg}
	return r.Action(ctx, action, args)
}
