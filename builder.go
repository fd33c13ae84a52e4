package gitpbuilder

import "fmt"

// Builder identifies one of the external chroot builder backends that
// git-pbuilder knows how to drive.
type Builder string

const (
	Cowbuilder  Builder = "cowbuilder"
	Pbuilder    Builder = "pbuilder"
	Qemubuilder Builder = "qemubuilder"
)

// ParseBuilder validates a builder name coming from the environment or the
// invocation name. Anything other than the three known backends is a
// configuration error and must abort before any external tool is run.
func ParseBuilder(name string) (Builder, error) {
	switch Builder(name) {
	case Cowbuilder, Pbuilder, Qemubuilder:
		return Builder(name), nil
	}
	return "", fmt.Errorf("unknown builder %q (expected cowbuilder, pbuilder or qemubuilder)", name)
}

// BaseFlag returns the builder option that carries the chroot base path
// (or config file, for qemubuilder).
func (b Builder) BaseFlag() string {
	switch b {
	case Cowbuilder:
		return "--basepath"
	case Pbuilder:
		return "--basetgz"
	case Qemubuilder:
		return "--config"
	}
	return ""
}

// BuildConfig is the resolved per-invocation configuration. It is constructed
// once at process start and read-only afterwards.
type BuildConfig struct {
	Builder      Builder
	Distribution string
	Architecture string

	// Backports is set when the raw distribution carried a -backports
	// suffix (e.g. squeeze-backports). Distribution then holds the base
	// distribution.
	Backports bool

	// BasePath is the chroot base image (directory for cowbuilder, tarball
	// for pbuilder) or the qemubuilder config file. Empty when automatic
	// configuration is disabled via GIT_PBUILDER_AUTOCONF=no.
	BasePath string

	// ExtraOptions are appended to the builder command line, in order:
	// base path flag, --architecture, backports mirror, then the words from
	// GIT_PBUILDER_OPTIONS.
	ExtraOptions []string

	// EtchWorkaround requests --debian-etch-workaround in debbuildopts
	// (base distribution etch or ebo).
	EtchWorkaround bool

	// Autoconf is false when GIT_PBUILDER_AUTOCONF=no, i.e. the builder
	// relies on its own pbuilderrc instead of the options above.
	Autoconf bool
}
