package probe

// Prober is implemented by all probe types.
// Each probe inspects one aspect of the environment and returns a
// Result indicating success or failure. Probes absorb every fault
// internally: Run never panics and the runner never needs to recover.
//
// Implementations:
//   - runtimecheck.Check: verifies the Go runtime version
//   - toolchaincheck.Check: verifies the go toolchain binary
//   - stdlibcheck.Check: verifies standard-library facilities
//   - langcheck.Check: exercises core language operations
//   - filecheck.Check: round-trips a temporary file
//   - subprocesscheck.Check: spawns this binary as a child process
//   - toolscheck.Check: probes external developer tools
type Prober interface {
	Run() Result
}
