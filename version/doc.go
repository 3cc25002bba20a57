// Package version exposes build information for the running binary.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/peoplekit/authkit/version.Version=1.2.0"
//
// When ldflags are absent, the git details are recovered from the embedded
// VCS build info where available.
package version
