package filecheck

import (
	"io/fs"
	"os"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// WriteFile writes data to the named file.
func (r *RealFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// ReadFile reads the named file's contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Remove deletes the named file.
func (r *RealFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// mockFileSystem is a test double for FileSystem.
type mockFileSystem struct {
	WriteFileFunc func(name string, data []byte, perm fs.FileMode) error
	ReadFileFunc  func(name string) ([]byte, error)
	RemoveFunc    func(name string) error
}

// WriteFile calls the mock function.
func (m *mockFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return m.WriteFileFunc(name, data, perm)
}

// ReadFile calls the mock function.
func (m *mockFileSystem) ReadFile(name string) ([]byte, error) {
	return m.ReadFileFunc(name)
}

// Remove calls the mock function.
func (m *mockFileSystem) Remove(name string) error {
	return m.RemoveFunc(name)
}
