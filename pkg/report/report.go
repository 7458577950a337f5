// Package report aggregates probe outcomes into the final summary.
package report

import "github.com/vertti/checkup/pkg/probe"

// Report counts probe outcomes for a single run. It is created fresh
// at the start of a run and only read once all probes have finished.
type Report struct {
	Total  int
	Passed int
}

// Add records one probe result.
func (r *Report) Add(result probe.Result) {
	r.Total++
	if result.OK() {
		r.Passed++
	}
}

// Failed returns the number of probes that did not pass.
func (r *Report) Failed() int {
	return r.Total - r.Passed
}

// AllPassed returns true if every recorded probe passed.
func (r *Report) AllPassed() bool {
	return r.Passed == r.Total
}
