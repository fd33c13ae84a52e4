package config

import (
	"fmt"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
)

// UnknownBuilderError reports a builder name that is none of cowbuilder,
// pbuilder or qemubuilder. Resolution aborts before any external tool runs.
type UnknownBuilderError struct {
	Name string
}

func (e *UnknownBuilderError) Error() string {
	return fmt.Sprintf("unknown builder %q (expected cowbuilder, pbuilder or qemubuilder)", e.Name)
}

// MissingBaseError reports that the resolved chroot base image does not
// exist. The builder cannot run against a nonexistent chroot; the create
// action is exempt because it is about to make one.
type MissingBaseError struct {
	Builder gitpbuilder.Builder
	Path    string
}

func (e *MissingBaseError) Error() string {
	return fmt.Sprintf("base %s does not exist, run git-pbuilder create first", e.Path)
}

// UnreadableConfigError reports a qemubuilder config file that is missing or
// not readable.
type UnreadableConfigError struct {
	Path string
	Err  error
}

func (e *UnreadableConfigError) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Err)
}

func (e *UnreadableConfigError) Unwrap() error { return e.Err }
