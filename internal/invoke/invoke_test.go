package invoke

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
)

func TestActionArgs(t *testing.T) {
	r := &Runner{
		Config: &gitpbuilder.BuildConfig{
			Builder:      gitpbuilder.Cowbuilder,
			ExtraOptions: []string{"--basepath", "/var/cache/pbuilder/base-sid.cow"},
		},
	}
	got := r.ActionArgs("update", []string{"--override-config"})
	want := []string{
		"sudo", "cowbuilder", "--update",
		"--basepath", "/var/cache/pbuilder/base-sid.cow",
		"--override-config",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ActionArgs: diff (-want +got):\n%s", diff)
	}
}

func TestBuildArgs(t *testing.T) {
	for _, tt := range []struct {
		desc   string
		config gitpbuilder.BuildConfig
		opts   []string
		args   []string
		want   []string
	}{
		{
			desc: "plain",
			config: gitpbuilder.BuildConfig{
				Builder:      gitpbuilder.Cowbuilder,
				ExtraOptions: []string{"--basepath", "/var/cache/pbuilder/base-sid.cow"},
			},
			args: []string{"-us", "-uc"},
			want: []string{
				"pdebuild", "--buildresult", "..", "--pbuilder", "cowbuilder",
				"--debbuildopts", "-us -uc",
				"--", "--basepath", "/var/cache/pbuilder/base-sid.cow",
			},
		},
		{
			desc: "etch workaround",
			config: gitpbuilder.BuildConfig{
				Builder:        gitpbuilder.Pbuilder,
				EtchWorkaround: true,
				ExtraOptions:   []string{"--basetgz", "/var/cache/pbuilder/base-etch.tgz"},
			},
			want: []string{
				"pdebuild", "--buildresult", "..", "--pbuilder", "pbuilder",
				"--debbuildopts", "--debian-etch-workaround",
				"--", "--basetgz", "/var/cache/pbuilder/base-etch.tgz",
			},
		},
		{
			desc: "pdebuild options",
			config: gitpbuilder.BuildConfig{
				Builder:      gitpbuilder.Cowbuilder,
				ExtraOptions: []string{"--basepath", "/var/cache/pbuilder/base.cow"},
			},
			opts: []string{"--use-pdebuild-internal"},
			want: []string{
				"pdebuild", "--buildresult", "..", "--pbuilder", "cowbuilder",
				"--use-pdebuild-internal",
				"--", "--basepath", "/var/cache/pbuilder/base.cow",
			},
		},
		{
			desc: "autoconf disabled",
			config: gitpbuilder.BuildConfig{
				Builder: gitpbuilder.Cowbuilder,
			},
			args: []string{"-sa"},
			want: []string{
				"pdebuild", "--buildresult", "..", "--pbuilder", "cowbuilder",
				"--debbuildopts", "-sa",
			},
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			r := &Runner{
				Config:          &tt.config,
				OutputDir:       "..",
				PdebuildOptions: tt.opts,
			}
			got := r.BuildArgs(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("BuildArgs: diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != -1 {
		t.Errorf("ExitCode(nil) = %v, want -1", got)
	}
}
