// Package subprocesscheck verifies this binary can spawn a child
// process by re-running its own executable with the hidden hello
// subcommand and capturing the output.
package subprocesscheck

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/vertti/checkup/pkg/cmdrunner"
	"github.com/vertti/checkup/pkg/probe"
)

// DefaultTimeout bounds the child process.
const DefaultTimeout = 5 * time.Second

// WantOutput is the literal the child must print.
const WantOutput = "Hello from subprocess"

// HelloArgs are the arguments passed to the spawned executable.
var HelloArgs = []string{"hello"}

// Check verifies subprocess spawning works.
type Check struct {
	Executable func() (string, error) // resolves the binary to spawn (default: os.Executable)
	Timeout    time.Duration          // timeout for the child (default: DefaultTimeout)
	Runner     cmdrunner.Runner       // injected for testing
}

// Run executes the subprocess check.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "subprocess: self",
	}

	executable := c.Executable
	if executable == nil {
		executable = os.Executable
	}
	runner := c.Runner
	if runner == nil {
		runner = &cmdrunner.RealRunner{}
	}

	self, err := executable()
	if err != nil {
		return result.Failf("cannot resolve own executable: %v", err)
	}
	result.AddDetailf("spawning: %s %s", self, strings.Join(HelloArgs, " "))

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := runner.RunContext(ctx, self, HelloArgs...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("subprocess timed out after %s", timeout)
		}
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		return result.Failf("subprocess failed: %v", err)
	}

	result.AddDetailf("output: %s", strings.TrimSpace(stdout))

	if !strings.Contains(stdout, WantOutput) {
		return result.Failf("output does not contain %q", WantOutput)
	}

	return result.Pass("subprocess working")
}
