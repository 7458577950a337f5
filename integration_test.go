package checkup_test

import (
	"os"
	"testing"

	"github.com/vertti/checkup/pkg/filecheck"
	"github.com/vertti/checkup/pkg/langcheck"
	"github.com/vertti/checkup/pkg/probe"
	"github.com/vertti/checkup/pkg/runtimecheck"
	"github.com/vertti/checkup/pkg/stdlibcheck"
	"github.com/vertti/checkup/pkg/toolscheck"
)

// Integration tests verify the Real* implementations work against the
// actual system. Unit tests in each package cover edge cases; these
// verify end-to-end behavior on a real machine. The toolchain and
// subprocess probes are exercised through the built binary, not here,
// since they spawn executables the test process does not control.

func TestIntegration_Runtime(t *testing.T) {
	c := runtimecheck.Check{}

	result := c.Run()

	// The test binary itself runs on a supported toolchain.
	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestIntegration_Stdlib(t *testing.T) {
	c := stdlibcheck.Check{}

	result := c.Run()

	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestIntegration_Lang(t *testing.T) {
	c := langcheck.Check{}

	result := c.Run()

	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestIntegration_File(t *testing.T) {
	c := filecheck.Check{}

	result := c.Run()

	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}

	// The fixed temp path must not survive the probe.
	if _, err := os.Stat(filecheck.DefaultPath()); !os.IsNotExist(err) {
		t.Errorf("temp file %s still exists after the probe (err = %v)", filecheck.DefaultPath(), err)
	}
}

func TestIntegration_Tools(t *testing.T) {
	c := toolscheck.Check{
		// git is present wherever this repo is checked out; go runs
		// the tests. brew may legitimately be missing, which is the
		// 2-of-3 case the threshold exists for.
	}

	result := c.Run()

	if result.Status != probe.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}
