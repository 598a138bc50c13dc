package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "uikit",
		Short:         "Resolve component class strings and preview button variants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassesCmd(),
		newCNCmd(),
		newServeCmd(),
	)
	return root
}
