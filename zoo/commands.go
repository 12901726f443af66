package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"znkr.io/arraylist/arraylist"
	"znkr.io/arraylist/zoo/animals"
	"znkr.io/diff/textdiff"
)

func newShowCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Prints the animals in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			herd, err := o.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), herd)
			return nil
		},
	}
	o.addFileFlag(cmd)
	return cmd
}

func newSortCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Prints the animals before and after sorting them by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			herd, err := o.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), herd)
			herd.Sort(o.compare())
			fmt.Fprintln(cmd.OutOrStdout(), herd)
			return nil
		},
	}
	o.addFileFlag(cmd)
	o.addOrderFlag(cmd)
	return cmd
}

func newDiffCmd() *cobra.Command {
	var o options
	var color bool
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Prints a unified diff between the original and the sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			herd, err := o.load()
			if err != nil {
				return err
			}
			before := lines(herd)
			herd.Sort(o.compare())
			after := lines(herd)

			if slices.Equal(before, after) {
				log.Printf("Animals are already sorted")
				return nil
			}
			d := textdiff.Unified(strings.Join(before, ""), strings.Join(after, ""))
			if color {
				return writeColored(cmd.OutOrStdout(), d)
			}
			fmt.Fprint(cmd.OutOrStdout(), d)
			return nil
		},
	}
	o.addFileFlag(cmd)
	o.addOrderFlag(cmd)
	cmd.Flags().BoolVar(&color, "color", false, "color the diff for terminals")
	return cmd
}

// lines renders every animal on its own line.
func lines(herd *arraylist.List[animals.Animal]) []string {
	ret := make([]string, 0, herd.Len())
	for _, a := range herd.Values() {
		ret = append(ret, a.Name+"\n")
	}
	return ret
}
