// Package toolchaincheck verifies the go toolchain binary, the
// ecosystem's package installer, is present and answers.
package toolchaincheck

import (
	"context"
	"strings"
	"time"

	"github.com/vertti/checkup/pkg/cmdrunner"
	"github.com/vertti/checkup/pkg/probe"
)

// DefaultTimeout bounds the version invocation.
const DefaultTimeout = 10 * time.Second

// Check verifies that the go toolchain exists and can report its version.
type Check struct {
	Command string           // binary to probe (default: "go")
	Timeout time.Duration    // timeout for the version command (default: DefaultTimeout)
	Runner  cmdrunner.Runner // injected for testing
}

// Run executes the toolchain check.
func (c *Check) Run() probe.Result {
	command := c.Command
	if command == "" {
		command = "go"
	}
	result := probe.Result{
		Name: "toolchain: " + command,
	}

	runner := c.Runner
	if runner == nil {
		runner = &cmdrunner.RealRunner{}
	}

	path, err := runner.LookPath(command)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}
	result.AddDetailf("path: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := runner.RunContext(ctx, command, "version")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = probe.StatusFail
		result.Err = err
		return result
	}

	if out := strings.TrimSpace(stdout); out != "" {
		result.AddDetailf("version: %s", out)
	}

	return result.Pass("toolchain is working")
}
