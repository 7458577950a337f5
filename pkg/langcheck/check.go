// Package langcheck exercises core language operations: building a
// derived slice, reversing a string, and composing a small map.
package langcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/checkup/pkg/probe"
)

const reverseInput = "checkup"

// Check exercises slices, strings, and maps in-process. Since a
// compiled program cannot rely on catching faults here, it verifies
// the computed values against fixed expectations instead.
type Check struct{}

// Run executes the language check.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "lang: basics",
	}

	squares := squaresUpTo(5)
	result.AddDetailf("squares: %v", squares)
	if fmt.Sprint(squares) != "[0 1 4 9 16]" {
		return result.Failf("squares = %v, want [0 1 4 9 16]", squares)
	}

	reversed := reverse(reverseInput)
	result.AddDetailf("reversed: %s", reversed)
	if reversed != "pukcehc" {
		return result.Failf("reverse(%q) = %q, want %q", reverseInput, reversed, "pukcehc")
	}

	tools := toolIndicators()
	result.AddDetailf("tools: %s", tools)
	if !strings.Contains(tools, "go=✓") {
		return result.Failf("tool indicators = %q, missing go=✓", tools)
	}

	return result.Pass("language operations working")
}

// squaresUpTo returns the squares of 0..n-1.
func squaresUpTo(n int) []int {
	squares := make([]int, 0, n)
	for i := 0; i < n; i++ {
		squares = append(squares, i*i)
	}
	return squares
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// toolIndicators builds a fixed ordered tool indicator mapping.
func toolIndicators() string {
	names := []string{"go", "git", "brew"}
	indicators := map[string]string{"go": "✓", "git": "✓", "brew": "✓"}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+indicators[name])
	}
	return strings.Join(parts, " ")
}
