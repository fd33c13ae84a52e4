package gitpbuilder

import "strings"

// BaseImage describes one chroot base image (or qemubuilder config file)
// found under the base directory, parsed back out of its file name.
type BaseImage struct {
	Builder      Builder
	Distribution string
	Architecture string
	Backports    bool

	// Name is the file name the image was parsed from.
	Name string
}

// ParseBaseImage parses the file names the resolver produces:
//
//	base[-<dist>][-backports][-<arch>].cow   (cowbuilder)
//	base[-<dist>][-backports][-<arch>].tgz   (pbuilder)
//	qemubuilder-<arch>-<dist>[-backports].conf
//
// A plain base.cow or base.tgz is the default sid image and parses with an
// empty distribution. Files that match none of the shapes return ok=false.
func ParseBaseImage(name string) (BaseImage, bool) {
	img := BaseImage{Name: name}
	var rest string
	switch {
	case strings.HasSuffix(name, ".cow"):
		img.Builder = Cowbuilder
		rest = strings.TrimSuffix(name, ".cow")
	case strings.HasSuffix(name, ".tgz"):
		img.Builder = Pbuilder
		rest = strings.TrimSuffix(name, ".tgz")
	case strings.HasSuffix(name, ".conf"):
		img.Builder = Qemubuilder
		rest = strings.TrimSuffix(name, ".conf")
	default:
		return BaseImage{}, false
	}

	if img.Builder == Qemubuilder {
		rest = strings.TrimPrefix(rest, "qemubuilder-")
		if rest == strings.TrimSuffix(name, ".conf") {
			return BaseImage{}, false
		}
		arch, dist, ok := strings.Cut(rest, "-")
		if !ok || !Architectures[arch] {
			return BaseImage{}, false
		}
		img.Architecture = arch
		if strings.HasSuffix(dist, "-backports") {
			img.Backports = true
			dist = strings.TrimSuffix(dist, "-backports")
		}
		img.Distribution = dist
		return img, true
	}

	if rest != "base" && !strings.HasPrefix(rest, "base-") {
		return BaseImage{}, false
	}
	rest = strings.TrimPrefix(strings.TrimPrefix(rest, "base"), "-")
	if arch, ok := HasArchSuffix(rest); ok {
		img.Architecture = arch
		rest = strings.TrimSuffix(rest, "-"+arch)
	}
	if rest == "backports" || strings.HasSuffix(rest, "-backports") {
		img.Backports = true
		rest = strings.TrimSuffix(strings.TrimSuffix(rest, "backports"), "-")
	}
	img.Distribution = rest
	return img, true
}
