package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gbp-tools/git-pbuilder/internal/config"
	"github.com/gbp-tools/git-pbuilder/internal/env"
)

const envHelp = `git-pbuilder env

Print the configuration resolved from the invocation name and environment:
the builder backend, distribution, architecture, chroot base path and the
options that would be passed to the builder.

Example:
  % DIST=bullseye git-pbuilder env
`

func printenv(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("env", flag.ExitOnError)
	fset.Usage = usage(fset, envHelp)
	fset.Parse(args)

	e := env.FromEnviron()
	// create semantics: a missing base image is worth showing, not an error
	cfg, err := config.Resolve(os.Args[0], e, true)
	if err != nil {
		return err
	}
	fmt.Printf("BUILDER=%q\n", cfg.Builder)
	fmt.Printf("DIST=%q\n", cfg.Distribution)
	fmt.Printf("ARCH=%q\n", cfg.Architecture)
	fmt.Printf("BACKPORTS=%v\n", cfg.Backports)
	fmt.Printf("BASE=%q\n", cfg.BasePath)
	fmt.Printf("OPTIONS=%q\n", cfg.ExtraOptions)
	fmt.Printf("OUTPUT_DIR=%q\n", e.OutputDir)
	fmt.Printf("AUTOCONF=%v\n", cfg.Autoconf)
	return nil
}
