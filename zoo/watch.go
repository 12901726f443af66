package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Prints the sorted animals every time the file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.file == "" {
				return fmt.Errorf("watch requires --file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, cmd.OutOrStdout(), &o)
		},
	}
	o.addFileFlag(cmd)
	o.addOrderFlag(cmd)
	return cmd
}

// watch prints the sorted animals and prints them again whenever the file is written, until ctx is
// done.
func watch(ctx context.Context, w io.Writer, o *options) error {
	file, err := filepath.Abs(o.file)
	if err != nil {
		return fmt.Errorf("determining path: %v", err)
	}

	update := func() error {
		herd, err := o.load()
		if err != nil {
			return err
		}
		herd.Sort(o.compare())
		fmt.Fprintln(w, herd)
		return nil
	}

	// Watch the directory instead of the file, editors often replace the file on save.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("starting watch: %v", err)
	}

	if err := update(); err != nil {
		return err
	}
	log.Printf("Watching %v, press Ctrl-C to stop", o.file)

	for {
		select {
		case event := <-watcher.Events:
			if event.Name != file || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := update(); err != nil {
				log.Printf("failed to update animals: %v", err)
			}
		case err := <-watcher.Errors:
			return fmt.Errorf("watching: %v", err)
		case <-ctx.Done():
			fmt.Fprint(os.Stderr, "\r") // remove Ctrl-C output characters
			log.Printf("Stopped watching")
			return nil
		}
	}
}
