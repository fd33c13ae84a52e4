package gitpbuilder

import "strings"

// Architectures contains one entry for each Debian architecture identifier
// that may appear in invocation names and base image file names.
var Architectures = map[string]bool{
	"amd64":    true,
	"arm64":    true,
	"armel":    true,
	"armhf":    true,
	"i386":     true,
	"mips":     true,
	"mips64el": true,
	"mipsel":   true,
	"ppc64el":  true,
	"riscv64":  true,
	"s390x":    true,
	"sparc64":  true,
}

// HasArchSuffix reports whether name ends in an architecture identifier
// (e.g. base-squeeze-amd64) and returns the identifier.
func HasArchSuffix(name string) (archIdentifier string, ok bool) {
	for a := range Architectures {
		if strings.HasSuffix(name, "-"+a) {
			return a, true
		}
	}
	return "", false
}
