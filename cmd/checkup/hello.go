package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/checkup/pkg/subprocesscheck"
)

// helloCmd is the child program for the subprocess probe: the probe
// re-executes this binary with "hello" and expects exactly this line
// on stdout.
var helloCmd = &cobra.Command{
	Use:    "hello",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(subprocesscheck.WantOutput)
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}
