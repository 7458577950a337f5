// Package stdlibcheck confirms the standard-library facilities the
// rest of the diagnostic relies on are usable in this process.
package stdlibcheck

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/tidwall/gjson"

	"github.com/vertti/checkup/pkg/probe"
)

// Facility is one standard-library capability to exercise.
type Facility struct {
	Name string
	Try  func() (detail string, err error)
}

// DefaultFacilities returns the fixed, ordered facility set: OS
// interaction, system info, structured-data encoding, process
// spawning, and platform info.
func DefaultFacilities() []Facility {
	return []Facility{
		{Name: "os", Try: tryOS},
		{Name: "sysinfo", Try: trySysInfo},
		{Name: "json", Try: tryJSON},
		{Name: "exec", Try: tryExec},
		{Name: "platform", Try: tryPlatform},
	}
}

func tryOS() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return "working directory: " + wd, nil
}

func trySysInfo() (string, error) {
	return fmt.Sprintf("cpus: %d, os: %s", runtime.NumCPU(), runtime.GOOS), nil
}

func tryJSON() (string, error) {
	data, err := json.Marshal(map[string]string{"tool": "checkup"})
	if err != nil {
		return "", err
	}
	got := gjson.GetBytes(data, "tool").String()
	if got != "checkup" {
		return "", fmt.Errorf("json round-trip returned %q, want %q", got, "checkup")
	}
	return "json round-trip ok", nil
}

func tryExec() (string, error) {
	path, err := exec.LookPath("sh")
	if err != nil {
		return "", err
	}
	return "shell: " + path, nil
}

func tryPlatform() (string, error) {
	return fmt.Sprintf("runtime: %s, arch: %s", runtime.Version(), runtime.GOARCH), nil
}

// Check verifies that every facility is usable.
type Check struct {
	Facilities []Facility // fixed probe table (default: DefaultFacilities)
}

// Run executes the stdlib check.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "stdlib: facilities",
	}

	facilities := c.Facilities
	if facilities == nil {
		facilities = DefaultFacilities()
	}

	for _, f := range facilities {
		detail, err := f.Try()
		if err != nil {
			return result.Failf("facility %s unusable: %v", f.Name, err)
		}
		result.AddDetailf("%s: %s", f.Name, detail)
	}

	return result.Pass("all facilities usable")
}
