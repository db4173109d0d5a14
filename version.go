package etharp

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	majorVersion = 0
	minorVersion = 1
	patchVersion = 0
)

// Version reports this module's semantic version together with the Go
// runtime and VCS revision it was built with, for cmd/etharpd's "version"
// subcommand and for attaching to bug reports.
func Version() string {
	v := fmt.Sprintf("etharp v%d.%d.%d (%s, table-size default %d)", majorVersion, minorVersion, patchVersion, runtime.Version(), DefaultTableSize)

	revision, dirty := buildRevision()
	if revision != "" {
		v += " rev:" + revision
		if dirty {
			v += "-dirty"
		}
	}
	return v
}

// buildRevision extracts the VCS commit this binary was built from, which
// the Go toolchain only embeds when building from within a checkout.
func buildRevision() (revision string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return revision, dirty
}
