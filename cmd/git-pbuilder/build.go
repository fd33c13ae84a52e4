package main

import (
	"context"
	"os"

	"github.com/google/shlex"
	"golang.org/x/xerrors"

	"github.com/gbp-tools/git-pbuilder/internal/config"
	"github.com/gbp-tools/git-pbuilder/internal/env"
	"github.com/gbp-tools/git-pbuilder/internal/invoke"
)

const buildHelp = `git-pbuilder [dpkg-buildpackage options]

Build the current package with pdebuild inside the configured chroot.
Normally invoked by gbp buildpackage:

  % gbp buildpackage --git-builder=git-pbuilder
`

func runBuild(ctx context.Context, args []string) error {
	e := env.FromEnviron()
	cfg, err := config.Resolve(os.Args[0], e, false)
	if err != nil {
		return err
	}
	pdebuildOptions, err := shlex.Split(e.PdebuildOptions)
	if err != nil {
		return xerrors.Errorf("GIT_PBUILDER_PDEBUILDOPTIONS: %v", err)
	}
	r := &invoke.Runner{
		Config:          cfg,
		OutputDir:       e.OutputDir,
		PdebuildOptions: pdebuildOptions,
	}
	return r.Build(ctx, args)
}
