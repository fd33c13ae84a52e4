// Package env captures the environment variables git-pbuilder reacts to.
// Inspect the resolved configuration using `git-pbuilder env`.
package env

import "os"

// DefaultBaseDir is where the pbuilder suite keeps chroot base images
// unless COWBUILDER_BASE/PBUILDER_BASE say otherwise.
const DefaultBaseDir = "/var/cache/pbuilder"

// Env holds the variables relevant to one invocation. Explicit settings
// always win over defaults inferred from the invocation name.
type Env struct {
	// Builder, Dist and Arch override the name-derived defaults (BUILDER,
	// DIST, ARCH). Empty means "not set".
	Builder string
	Dist    string
	Arch    string

	// CowbuilderBase and PbuilderBase are the directories holding .cow
	// trees and base tarballs/qemubuilder configs respectively.
	CowbuilderBase string
	PbuilderBase   string

	// Options and PdebuildOptions are shell-quoted option strings for the
	// builder and for pdebuild (GIT_PBUILDER_OPTIONS,
	// GIT_PBUILDER_PDEBUILDOPTIONS).
	Options         string
	PdebuildOptions string

	// OutputDir is where pdebuild places build results
	// (GIT_PBUILDER_OUTPUT_DIR, default "..").
	OutputDir string

	// Autoconf is false when GIT_PBUILDER_AUTOCONF=no: skip base path
	// resolution and builder options entirely, relying on pbuilderrc.
	Autoconf bool
}

// FromEnviron captures the process environment.
func FromEnviron() Env {
	return Env{
		Builder:         os.Getenv("BUILDER"),
		Dist:            os.Getenv("DIST"),
		Arch:            os.Getenv("ARCH"),
		CowbuilderBase:  orDefault("COWBUILDER_BASE", DefaultBaseDir),
		PbuilderBase:    orDefault("PBUILDER_BASE", DefaultBaseDir),
		Options:         os.Getenv("GIT_PBUILDER_OPTIONS"),
		PdebuildOptions: os.Getenv("GIT_PBUILDER_PDEBUILDOPTIONS"),
		OutputDir:       orDefault("GIT_PBUILDER_OUTPUT_DIR", ".."),
		Autoconf:        os.Getenv("GIT_PBUILDER_AUTOCONF") != "no",
	}
}

func orDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
