package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/checkup/pkg/filecheck"
	"github.com/vertti/checkup/pkg/langcheck"
	"github.com/vertti/checkup/pkg/output"
	"github.com/vertti/checkup/pkg/probe"
	"github.com/vertti/checkup/pkg/report"
	"github.com/vertti/checkup/pkg/runtimecheck"
	"github.com/vertti/checkup/pkg/stdlibcheck"
	"github.com/vertti/checkup/pkg/subprocesscheck"
	"github.com/vertti/checkup/pkg/toolchaincheck"
	"github.com/vertti/checkup/pkg/toolscheck"
)

// ErrChecksFailed is returned when at least one probe fails.
// The returned error causes Cobra to exit with code 1.
var ErrChecksFailed = errors.New("some checks failed")

// probes returns the fixed, ordered probe set. Order is part of the
// report format; no probe depends on another's outcome.
func probes() []probe.Prober {
	return []probe.Prober{
		&runtimecheck.Check{},
		&toolchaincheck.Check{},
		&stdlibcheck.Check{},
		&langcheck.Check{},
		&filecheck.Check{},
		&subprocesscheck.Check{},
		&toolscheck.Check{},
	}
}

func runAll(cmd *cobra.Command, args []string) error {
	output.PrintBanner()

	rep := runProbes(probes())

	output.PrintSummary(rep)

	if !rep.AllPassed() {
		return ErrChecksFailed
	}
	return nil
}

// runProbes executes each probe in order, printing results as they
// complete, and aggregates the outcomes. Probes absorb their own
// faults, so a failing probe never stops the ones after it.
func runProbes(probers []probe.Prober) report.Report {
	var rep report.Report
	for _, p := range probers {
		result := p.Run()
		output.PrintResult(result)
		rep.Add(result)
	}
	return rep
}
