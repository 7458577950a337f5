package toolchaincheck

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vertti/checkup/pkg/cmdrunner"
	"github.com/vertti/checkup/pkg/probe"
)

func TestToolchainCheck_NotFound(t *testing.T) {
	runner := &cmdrunner.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	c := &Check{Runner: runner}

	result := c.Run()

	if result.Status != probe.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, probe.StatusFail)
	}
	if result.Name != "toolchain: go" {
		t.Errorf("Name = %q, want %q", result.Name, "toolchain: go")
	}
}

func TestToolchainCheck_Working(t *testing.T) {
	runner := &cmdrunner.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/local/go/bin/go", nil
		},
		RunContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			if name != "go" || len(args) != 1 || args[0] != "version" {
				t.Errorf("unexpected invocation: %s %v", name, args)
			}
			return "go version go1.25.0 linux/amd64\n", "", nil
		},
	}

	c := &Check{Runner: runner}

	result := c.Run()

	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want %v (details: %v)", result.Status, probe.StatusOK, result.Details)
	}
	foundVersion := false
	for _, d := range result.Details {
		if d == "version: go version go1.25.0 linux/amd64" {
			foundVersion = true
		}
	}
	if !foundVersion {
		t.Errorf("Details missing trimmed version line, got %v", result.Details)
	}
}

func TestToolchainCheck_CommandFailed(t *testing.T) {
	runner := &cmdrunner.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/local/go/bin/go", nil
		},
		RunContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "", "go: corrupted toolchain\n", errors.New("exit status 1")
		},
	}

	c := &Check{Runner: runner}

	result := c.Run()

	if result.Status != probe.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, probe.StatusFail)
	}
	foundStderr := false
	for _, d := range result.Details {
		if strings.Contains(d, "corrupted toolchain") {
			foundStderr = true
		}
	}
	if !foundStderr {
		t.Errorf("Details missing stderr, got %v", result.Details)
	}
}

func TestToolchainCheck_Timeout(t *testing.T) {
	runner := &cmdrunner.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/local/go/bin/go", nil
		},
		RunContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			<-ctx.Done()
			return "", "", ctx.Err()
		},
	}

	c := &Check{Timeout: 10 * time.Millisecond, Runner: runner}

	result := c.Run()

	if result.Status != probe.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, probe.StatusFail)
	}
	foundTimeout := false
	for _, d := range result.Details {
		if strings.Contains(d, "timed out") {
			foundTimeout = true
		}
	}
	if !foundTimeout {
		t.Errorf("Details should report the distinct timeout message, got %v", result.Details)
	}
}
