// Package config resolves which builder backend to run and where its chroot
// base image lives. The inputs are the invocation name (git-pbuilder is
// typically installed as symlinks like git-qemubuilder-sid-armel), explicit
// environment overrides, and existence checks on candidate base paths. The
// resolution itself is pure; nothing is executed here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
	"github.com/gbp-tools/git-pbuilder/internal/env"
)

// Defaults are the builder, distribution and architecture derived from the
// name the program was invoked as. Environment overrides win field by field.
type Defaults struct {
	Builder string
	Dist    string
	Arch    string
}

// InferDefaults derives Defaults from the invocation name. It is total:
// names that match nothing fall back to cowbuilder with empty distribution
// and architecture.
//
// A name like git-qemubuilder-sid-armel yields qemubuilder/sid/armel. The
// historic name git-pbuilder maps to cowbuilder, which has long been the
// better default for the same .deb output.
func InferDefaults(invokedName string) Defaults {
	d := Defaults{Builder: string(gitpbuilder.Cowbuilder)}

	name := filepath.Base(invokedName)
	idx := strings.Index(name, "git-")
	if idx < 0 {
		return d
	}
	rest := name[idx+len("git-"):]

	candidate := rest
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		candidate, rest = rest[:i], rest[i+1:]
	} else {
		rest = ""
	}
	switch {
	case candidate == "pbuilder", strings.HasPrefix(candidate, "/"):
		// compatibility: git-pbuilder has built with cowbuilder since 1.0
	case !strings.HasSuffix(candidate, "builder"):
	default:
		d.Builder = candidate
	}

	if rest == "" || strings.HasSuffix(rest, "builder") {
		return d
	}
	d.Dist = rest
	// Split a trailing architecture off the distribution token. A literal
	// backports token is part of the distribution, never an architecture
	// (git-cowbuilder-squeeze-backports).
	if i := strings.LastIndexByte(rest, '-'); i >= 0 && rest[i+1:] != "backports" {
		d.Dist, d.Arch = rest[:i], rest[i+1:]
	}
	return d
}

// StripBackports splits a -backports suffix off the raw distribution string.
// It does not check that the base distribution actually has a backports
// repository.
func StripBackports(dist string) (base string, backports bool) {
	if strings.HasSuffix(dist, "-backports") {
		return strings.TrimSuffix(dist, "-backports"), true
	}
	return dist, false
}

// request carries the inputs to base path resolution.
type request struct {
	builder   gitpbuilder.Builder
	dist      string
	arch      string
	backports bool
	baseDir   string
}

func (r *request) ext() string {
	if r.backports {
		return "-backports"
	}
	return ""
}

// A rule resolves the base path for one shape of request. Rules are tried in
// order; the first match wins, so the precedence is explicit.
type rule struct {
	match func(*request) bool
	apply func(*request) (path string, options []string, err error)
}

var rules = []rule{
	// Builds for a foreign architecture use per-architecture images and
	// must tell the builder which architecture to set up.
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Cowbuilder && r.arch != "" },
		apply: func(r *request) (string, []string, error) {
			path := filepath.Join(r.baseDir, "base-"+r.dist+r.ext()+"-"+r.arch+".cow")
			return path, []string{"--architecture", r.arch}, nil
		},
	},
	// Old cowbuilder setups have a plain base.cow for sid. Prefer a
	// base-sid.cow directory when it exists.
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Cowbuilder && r.dist == "sid" },
		apply: func(r *request) (string, []string, error) {
			sid := filepath.Join(r.baseDir, "base-sid"+r.ext()+".cow")
			if st, err := os.Stat(sid); err == nil && st.IsDir() {
				return sid, nil, nil
			}
			return filepath.Join(r.baseDir, "base"+r.ext()+".cow"), nil, nil
		},
	},
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Cowbuilder },
		apply: func(r *request) (string, []string, error) {
			return filepath.Join(r.baseDir, "base-"+r.dist+r.ext()+".cow"), nil, nil
		},
	},
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Pbuilder && r.arch != "" },
		apply: func(r *request) (string, []string, error) {
			path := filepath.Join(r.baseDir, "base-"+r.dist+r.ext()+"-"+r.arch+".tgz")
			return path, []string{"--architecture", r.arch}, nil
		},
	},
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Pbuilder && r.dist == "sid" },
		apply: func(r *request) (string, []string, error) {
			sid := filepath.Join(r.baseDir, "base-sid"+r.ext()+".tgz")
			if st, err := os.Stat(sid); err == nil && !st.IsDir() {
				return sid, nil, nil
			}
			return filepath.Join(r.baseDir, "base"+r.ext()+".tgz"), nil, nil
		},
	},
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Pbuilder },
		apply: func(r *request) (string, []string, error) {
			return filepath.Join(r.baseDir, "base-"+r.dist+r.ext()+".tgz"), nil, nil
		},
	},
	// qemubuilder reads a config file naming the emulated machine; there is
	// no image path to derive, so the file must already be readable.
	{
		match: func(r *request) bool { return r.builder == gitpbuilder.Qemubuilder },
		apply: func(r *request) (string, []string, error) {
			path := filepath.Join(r.baseDir, "qemubuilder-"+r.arch+"-"+r.dist+r.ext()+".conf")
			if err := unix.Access(path, unix.R_OK); err != nil {
				return "", nil, &UnreadableConfigError{Path: path, Err: err}
			}
			return path, nil, nil
		},
	},
}

func resolveBasePath(r *request) (string, []string, error) {
	// Distribution and architecture defaults depend on the builder:
	// qemubuilder targets emulated armel sid unless told otherwise, the
	// chroot builders build for sid on the native architecture.
	switch r.builder {
	case gitpbuilder.Qemubuilder:
		if r.arch == "" {
			r.arch = "armel"
		}
		if r.dist == "" {
			r.dist = "sid"
		}
	default:
		if r.dist == "" {
			r.dist = "sid"
		}
	}
	for _, rule := range rules {
		if rule.match(r) {
			return rule.apply(r)
		}
	}
	return "", nil, xerrors.Errorf("no base path rule for builder %q", r.builder)
}

// Resolve merges name-derived defaults with environment overrides and
// produces the read-only BuildConfig for this invocation. With creating set
// (the create action), a missing base path is not an error since the builder
// is about to make it.
func Resolve(invokedName string, e env.Env, creating bool) (*gitpbuilder.BuildConfig, error) {
	d := InferDefaults(invokedName)
	if e.Builder != "" {
		d.Builder = e.Builder
	}
	if e.Dist != "" {
		d.Dist = e.Dist
	}
	if e.Arch != "" {
		d.Arch = e.Arch
	}

	builder, err := gitpbuilder.ParseBuilder(d.Builder)
	if err != nil {
		return nil, &UnknownBuilderError{Name: d.Builder}
	}

	dist, backports := StripBackports(d.Dist)
	cfg := &gitpbuilder.BuildConfig{
		Builder:        builder,
		Distribution:   dist,
		Architecture:   d.Arch,
		Backports:      backports,
		EtchWorkaround: dist == "etch" || dist == "ebo",
		Autoconf:       e.Autoconf,
	}

	userOptions, err := shlex.Split(e.Options)
	if err != nil {
		return nil, xerrors.Errorf("GIT_PBUILDER_OPTIONS: %v", err)
	}

	if !e.Autoconf {
		// The builder's own pbuilderrc governs; pass only the user options.
		cfg.ExtraOptions = userOptions
		return cfg, nil
	}

	baseDir := e.PbuilderBase
	if builder == gitpbuilder.Cowbuilder {
		baseDir = e.CowbuilderBase
	}
	req := &request{
		builder:   builder,
		dist:      dist,
		arch:      d.Arch,
		backports: backports,
		baseDir:   baseDir,
	}
	path, options, err := resolveBasePath(req)
	if err != nil {
		return nil, err
	}
	cfg.Distribution = req.dist
	cfg.Architecture = req.arch
	cfg.BasePath = path

	if builder != gitpbuilder.Qemubuilder && !creating {
		if _, err := os.Stat(path); err != nil {
			return nil, &MissingBaseError{Builder: builder, Path: path}
		}
	}

	cfg.ExtraOptions = append(cfg.ExtraOptions, builder.BaseFlag(), path)
	cfg.ExtraOptions = append(cfg.ExtraOptions, options...)
	if backports {
		cfg.ExtraOptions = append(cfg.ExtraOptions,
			"--othermirror", "deb http://deb.debian.org/debian "+req.dist+"-backports main")
	}
	cfg.ExtraOptions = append(cfg.ExtraOptions, userOptions...)
	return cfg, nil
}
