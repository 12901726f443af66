// Command zoo demonstrates arraylist by sorting a herd of animals by name.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "zoo [command]",
		Short:        "Sorts animals by name",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}
