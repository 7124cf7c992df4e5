package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wofiles/internal/gui"
	"wofiles/internal/tui"
)

// newGUICmd creates the GUI command for the CLI
func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Launch the graphical user interface",
		Long:  `Open the explorer window, starting at directory or the configured start directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build has no GUI, use 'wofiles tui'")
			}
			return runGUI(opts, args)
		},
	}
}

// newTUICmd creates the terminal UI command
func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [directory]",
		Short: "Launch the terminal user interface",
		Long:  `Browse in the terminal with vim-style keys. Press ? inside for help.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}
}

func runGUI(opts *rootOptions, args []string) error {
	sess, w, err := opts.newSession(firstArg(args), true)
	if err != nil {
		return err
	}
	return gui.StartGUI(sess, w)
}

func runTUI(opts *rootOptions, args []string) error {
	sess, w, err := opts.newSession(firstArg(args), true)
	if err != nil {
		return err
	}
	return tui.Run(sess, w)
}
