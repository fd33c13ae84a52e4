package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromEnvironDefaults(t *testing.T) {
	for _, key := range []string{
		"BUILDER", "DIST", "ARCH",
		"COWBUILDER_BASE", "PBUILDER_BASE",
		"GIT_PBUILDER_OPTIONS", "GIT_PBUILDER_PDEBUILDOPTIONS",
		"GIT_PBUILDER_OUTPUT_DIR", "GIT_PBUILDER_AUTOCONF",
	} {
		t.Setenv(key, "")
	}
	want := Env{
		CowbuilderBase: DefaultBaseDir,
		PbuilderBase:   DefaultBaseDir,
		OutputDir:      "..",
		Autoconf:       true,
	}
	if diff := cmp.Diff(want, FromEnviron()); diff != "" {
		t.Fatalf("FromEnviron: diff (-want +got):\n%s", diff)
	}
}

func TestFromEnvironOverrides(t *testing.T) {
	t.Setenv("BUILDER", "qemubuilder")
	t.Setenv("DIST", "squeeze-backports")
	t.Setenv("ARCH", "armel")
	t.Setenv("COWBUILDER_BASE", "/srv/cow")
	t.Setenv("PBUILDER_BASE", "/srv/pbuilder")
	t.Setenv("GIT_PBUILDER_OPTIONS", "--hookdir /etc/hooks")
	t.Setenv("GIT_PBUILDER_PDEBUILDOPTIONS", "--use-pdebuild-internal")
	t.Setenv("GIT_PBUILDER_OUTPUT_DIR", "../build-area")
	t.Setenv("GIT_PBUILDER_AUTOCONF", "no")

	want := Env{
		Builder:         "qemubuilder",
		Dist:            "squeeze-backports",
		Arch:            "armel",
		CowbuilderBase:  "/srv/cow",
		PbuilderBase:    "/srv/pbuilder",
		Options:         "--hookdir /etc/hooks",
		PdebuildOptions: "--use-pdebuild-internal",
		OutputDir:       "../build-area",
		Autoconf:        false,
	}
	if diff := cmp.Diff(want, FromEnviron()); diff != "" {
		t.Fatalf("FromEnviron: diff (-want +got):\n%s", diff)
	}
}
