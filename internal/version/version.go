// Package version carries the regolab CLI build identity. The optional
// fields are stamped at release time via -ldflags; a plain `go build`
// leaves them empty and the version command prints "unknown" for them.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of regolab.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is the hash of the commit the binary was built from.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)
