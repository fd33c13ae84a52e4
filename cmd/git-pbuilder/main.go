// git-pbuilder is the builder command gbp buildpackage invokes to build
// Debian packages inside a cowbuilder, pbuilder or qemubuilder chroot.
//
// Without an action argument it runs pdebuild; the update, create and login
// actions manage the chroot base image via the builder itself. The builder,
// distribution and architecture come from the invocation name (install
// symlinks like git-qemubuilder-sid-armel) or from the BUILDER, DIST and
// ARCH environment variables.
package main

import (
	"context"
	"fmt"
	"os"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
	"github.com/gbp-tools/git-pbuilder/internal/invoke"
)

func main() {
	ctx, canc := gitpbuilder.InterruptibleContext()
	defer canc()

	type cmd struct {
		helpText string
		fn       func(ctx context.Context, args []string) error
	}
	verbs := map[string]cmd{
		"update": {actionHelp, func(ctx context.Context, args []string) error {
			return runAction(ctx, "update", args)
		}},
		"create": {actionHelp, func(ctx context.Context, args []string) error {
			return runAction(ctx, "create", args)
		}},
		"login": {actionHelp, func(ctx context.Context, args []string) error {
			return runAction(ctx, "login", args)
		}},
		"env":  {envHelp, printenv},
		"list": {listHelp, list},
	}

	// Everything that is not a known action is a build: gbp buildpackage
	// passes dpkg-buildpackage options (-us, -uc, -i.git, ...) which must
	// reach pdebuild untouched.
	args := os.Args[1:]
	verb := "build"
	if len(args) > 0 {
		if args[0] == "help" {
			if len(args) > 1 {
				if v, ok := verbs[args[1]]; ok {
					fmt.Fprint(os.Stderr, v.helpText)
					os.Exit(2)
				}
				if args[1] == "build" {
					fmt.Fprint(os.Stderr, buildHelp)
					os.Exit(2)
				}
			}
			fmt.Fprintf(os.Stderr, "syntax: git-pbuilder [update|create|login|env|list] [options]\n")
			fmt.Fprintf(os.Stderr, "\n")
			fmt.Fprintf(os.Stderr, "Actions:\n")
			fmt.Fprintf(os.Stderr, "\tupdate/create/login - manage the chroot base image\n")
			fmt.Fprintf(os.Stderr, "\tenv - print the resolved configuration\n")
			fmt.Fprintf(os.Stderr, "\tlist - list base images present on disk\n")
			fmt.Fprintf(os.Stderr, "\nAnything else builds the current package with pdebuild.\n")
			os.Exit(2)
		}
		if _, ok := verbs[args[0]]; ok {
			verb, args = args[0], args[1:]
		}
	}

	var err error
	if verb == "build" {
		err = runBuild(ctx, args)
	} else {
		err = verbs[verb].fn(ctx, args)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %+v\n", verb, err)
		if code := invoke.ExitCode(err); code > 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
