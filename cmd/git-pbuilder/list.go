package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	gitpbuilder "github.com/gbp-tools/git-pbuilder"
	"github.com/gbp-tools/git-pbuilder/internal/env"
)

const listHelp = `git-pbuilder list [-flags]

List chroot base images and qemubuilder configs present on disk, with the
distribution and architecture parsed from their names.

Example:
  % git-pbuilder list
  % git-pbuilder list -builder=pbuilder
`

func list(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		builder = fset.String("builder", "", "only list images for this builder backend")
	)
	fset.Usage = usage(fset, listHelp)
	fset.Parse(args)

	e := env.FromEnviron()
	dirs := []string{e.CowbuilderBase}
	if e.PbuilderBase != e.CowbuilderBase {
		dirs = append(dirs, e.PbuilderBase)
	}

	var images []gitpbuilder.BaseImage
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		for _, entry := range entries {
			img, ok := gitpbuilder.ParseBaseImage(entry.Name())
			if !ok {
				continue
			}
			if *builder != "" && string(img.Builder) != *builder {
				continue
			}
			images = append(images, img)
		}
	}
	sort.Slice(images, func(i, j int) bool {
		if images[i].Builder != images[j].Builder {
			return images[i].Builder < images[j].Builder
		}
		return images[i].Name < images[j].Name
	})
	for _, img := range images {
		dist := img.Distribution
		if dist == "" {
			dist = "sid" // plain base.cow/base.tgz is the sid default
		}
		if img.Backports {
			dist += "-backports"
		}
		arch := img.Architecture
		if arch == "" {
			arch = "native"
		}
		fmt.Printf("%-12s %-20s %-10s %s\n", img.Builder, dist, arch, img.Name)
	}
	return nil
}
