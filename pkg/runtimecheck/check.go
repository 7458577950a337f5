// Package runtimecheck verifies the Go runtime this binary runs on.
package runtimecheck

import (
	"os"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vertti/checkup/pkg/probe"
)

// MinVersion is the oldest Go runtime considered suitable.
var MinVersion = semver.MustParse("1.21")

// RuntimeInfo abstracts runtime introspection for testability.
type RuntimeInfo interface {
	Version() string
	Executable() (string, error)
	OS() string
	Arch() string
}

// RealRuntimeInfo reports the actual runtime metadata.
type RealRuntimeInfo struct{}

func (r *RealRuntimeInfo) Version() string             { return runtime.Version() }
func (r *RealRuntimeInfo) Executable() (string, error) { return os.Executable() }
func (r *RealRuntimeInfo) OS() string                  { return runtime.GOOS }
func (r *RealRuntimeInfo) Arch() string                { return runtime.GOARCH }

// Check verifies the runtime version meets the minimum.
type Check struct {
	MinVersion *semver.Version // minimum version required (default: MinVersion)
	Info       RuntimeInfo     // injected for testing
}

// Run executes the runtime check. It only reads process metadata;
// nothing is spawned and nothing is written.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "runtime: go",
	}

	info := c.Info
	if info == nil {
		info = &RealRuntimeInfo{}
	}
	minimum := c.MinVersion
	if minimum == nil {
		minimum = MinVersion
	}

	raw := info.Version()
	result.AddDetailf("version: %s", raw)

	if exe, err := info.Executable(); err == nil {
		result.AddDetailf("executable: %s", exe)
	} else {
		result.AddDetailf("executable: unknown (%v)", err)
	}
	result.AddDetailf("platform: %s/%s", info.OS(), info.Arch())

	// runtime.Version() is "go1.24.2" for releases; devel toolchains
	// report strings semver cannot parse and fail the check explicitly.
	parsed, err := semver.NewVersion(strings.TrimPrefix(raw, "go"))
	if err != nil {
		return result.Failf("cannot parse runtime version %q: %v", raw, err)
	}

	if parsed.LessThan(minimum) {
		return result.Failf("runtime version %s below minimum %s", parsed, minimum)
	}

	return result.Pass("runtime version is suitable")
}
