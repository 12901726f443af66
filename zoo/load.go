package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/arraylist/arraylist"
	"znkr.io/arraylist/zoo/animals"
)

// options holds the flags of a command.
type options struct {
	file string
	desc bool
}

func (o *options) addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "read animal names from `file`, one per line")
}

func (o *options) addOrderFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.desc, "desc", "d", false, "sort in descending order")
}

// load loads the animals from the configured file, or the built-in herd if there is none.
func (o *options) load() (*arraylist.List[animals.Animal], error) {
	if o.file == "" {
		return animals.Herd(), nil
	}

	f, err := os.Open(o.file)
	if err != nil {
		return nil, fmt.Errorf("loading animals: %v", err)
	}
	defer f.Close()

	herd, err := animals.Parse(o.file, f)
	if err != nil {
		return nil, fmt.Errorf("loading animals: %v", err)
	}
	return herd, nil
}

func (o *options) compare() func(a, b animals.Animal) int {
	if o.desc {
		return animals.Reverse(animals.ByName)
	}
	return animals.ByName
}
