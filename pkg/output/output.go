// Package output renders the report: banner, per-probe result lines,
// and the summary block.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/checkup/pkg/probe"
	"github.com/vertti/checkup/pkg/report"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 3)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintBanner outputs the tool banner.
func PrintBanner() {
	fmt.Println(boxStyle.Render("Checkup Environment Tests"))
	fmt.Println()
}

// PrintResult outputs a probe result with colored status.
func PrintResult(r probe.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	indent := "     "
	if !r.OK() {
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
	fmt.Println()
}

// PrintSummary outputs the aggregate summary block.
func PrintSummary(rep report.Report) {
	fmt.Println(boxStyle.Render("TEST SUMMARY"))
	fmt.Printf("Tests Run:     %d\n", rep.Total)
	fmt.Printf("Tests Passed:  %d\n", rep.Passed)
	fmt.Printf("Tests Failed:  %d\n", rep.Failed())
	fmt.Println()

	if rep.AllPassed() {
		fmt.Printf("%sAll tests passed!%s\n", green, reset)
		fmt.Println("Go environment is ready for use.")
	} else {
		fmt.Printf("%sSome tests failed%s\n", red, reset)
		fmt.Println("Check the output above for details.")
	}
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	if dim == "" {
		return detail
	}
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}
