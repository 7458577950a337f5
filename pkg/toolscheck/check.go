// Package toolscheck probes the external developer tools: the go
// toolchain, git, and brew. Any invocation fault counts the tool as
// missing; the check tolerates one absent tool because the host
// package manager is optional on some platforms.
package toolscheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vertti/checkup/pkg/cmdrunner"
	"github.com/vertti/checkup/pkg/probe"
)

// DefaultTimeout bounds each tool invocation.
const DefaultTimeout = 5 * time.Second

// FoundThreshold is the minimum number of tools that must be found.
const FoundThreshold = 2

const (
	indicatorFound   = "✓"
	indicatorMissing = "✗"
)

// Tool is one external command probed with a version flag.
type Tool struct {
	Name    string
	Command string
	Args    []string
}

// DefaultTools returns the fixed ordered tool set.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "go", Command: "go", Args: []string{"version"}},
		{Name: "git", Command: "git", Args: []string{"--version"}},
		{Name: "brew", Command: "brew", Args: []string{"--version"}},
	}
}

// Check verifies that enough developer tools are present.
type Check struct {
	Tools     []Tool           // fixed tool set (default: DefaultTools)
	Threshold int              // minimum tools found (default: FoundThreshold)
	Timeout   time.Duration    // timeout per invocation (default: DefaultTimeout)
	Runner    cmdrunner.Runner // injected for testing
}

// Run executes the tools check.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "tools: dev",
	}

	tools := c.Tools
	if tools == nil {
		tools = DefaultTools()
	}
	threshold := c.Threshold
	if threshold == 0 {
		threshold = FoundThreshold
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	runner := c.Runner
	if runner == nil {
		runner = &cmdrunner.RealRunner{}
	}

	found := 0
	indicators := make([]string, 0, len(tools))
	for _, tool := range tools {
		if c.probeTool(runner, tool, timeout) {
			found++
			indicators = append(indicators, tool.Name+"="+indicatorFound)
		} else {
			indicators = append(indicators, tool.Name+"="+indicatorMissing)
		}
	}

	result.AddDetailf("tools: %s", strings.Join(indicators, " "))

	if found < threshold {
		return result.Failf("only %d/%d tools working", found, len(tools))
	}

	return result.Pass(fmt.Sprintf("%d/%d tools working", found, len(tools)))
}

// probeTool invokes one tool with its version flag under a timeout.
// Every failure mode, including a missing binary or a hang, just
// means the tool is not usable here.
func (c *Check) probeTool(runner cmdrunner.Runner, tool Tool, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, _, err := runner.RunContext(ctx, tool.Command, tool.Args...)
	return err == nil
}
