// Package filecheck round-trips a fixed temporary file: write, read
// back, compare, delete. The delete runs on every path so no state
// leaks into later runs.
package filecheck

import (
	"os"
	"path/filepath"

	"github.com/vertti/checkup/pkg/probe"
)

// DefaultContent is the fixed literal written to the temp file.
const DefaultContent = "checkup test file"

// DefaultPath returns the fixed well-known temp path for this tool.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "checkup_test.txt")
}

// Check verifies basic file operations work.
type Check struct {
	Path    string     // path to write (default: DefaultPath())
	Content string     // content to round-trip (default: DefaultContent)
	FS      FileSystem // injected for testing
}

// Run executes the file check.
func (c *Check) Run() probe.Result {
	path := c.Path
	if path == "" {
		path = DefaultPath()
	}
	content := c.Content
	if content == "" {
		content = DefaultContent
	}
	result := probe.Result{
		Name: "file: " + path,
	}

	fsys := c.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}

	// The file is removed no matter which step fails below.
	defer func() { _ = fsys.Remove(path) }()

	if err := fsys.WriteFile(path, []byte(content), 0o600); err != nil {
		return result.Failf("write failed: %v", err)
	}
	result.AddDetailf("wrote %d bytes", len(content))

	read, err := fsys.ReadFile(path)
	if err != nil {
		return result.Failf("read failed: %v", err)
	}
	result.AddDetailf("read %d bytes", len(read))

	if string(read) != content {
		return result.Failf("content mismatch: read %q, wrote %q", string(read), content)
	}

	return result.Pass("file operations working")
}
