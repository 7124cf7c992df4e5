package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"wofiles/internal/fsview"
	"wofiles/internal/status"
	"wofiles/pkg/types"
)

// newListCmd creates the ls command
func newListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool
	var long bool

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List a directory the way the explorer shows it",
		Long: `List the children of a directory, applying the configured exclude
patterns. Dotfiles are hidden unless --all is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.newSession(firstArg(args), false)
			if err != nil {
				return err
			}

			entries, err := sess.Entries()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, entries)
			}
			for _, e := range entries {
				if long {
					fmt.Fprintln(out, longLine(e))
					continue
				}
				fmt.Fprintln(out, entryText(e.String(), e.IsDir))
			}
			if long {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedText(sess.Status("")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output entries in JSON format")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show type and size of each entry")

	return cmd
}

// newSearchCmd creates the search command
func newSearchCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query> [directory]",
		Short: "Search entries by name",
		Long: fmt.Sprintf(`Match entry names case-insensitively. A query shorter than %d characters
only filters the directory itself; longer queries search every
subdirectory as well.`, fsview.DeepQueryLen),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.newSession(firstArg(args[1:]), false)
			if err != nil {
				return err
			}

			matches, err := sess.Search(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, matches)
			}
			for _, e := range matches {
				name := relativeName(sess.Current(), e)
				fmt.Fprintln(out, entryText(name, e.IsDir))
			}
			fmt.Fprintln(cmd.ErrOrStderr(), mutedText(fmt.Sprintf("%d matches", len(matches))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output matches in JSON format")

	return cmd
}

// newStatCmd creates the stat command
func newStatCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Show type and size of a file",
		Long:  `Show what the status bar reports for a selected entry: its content type and size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := status.Scan(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				fmt.Fprintln(out, info.ToJSON())
				return nil
			}

			dir := args[0]
			if !info.IsDir {
				dir = filepath.Dir(dir)
			}
			fmt.Fprintln(out, primaryText("Entry:"))
			fmt.Fprint(out, info.String())
			fmt.Fprintf(out, "Free: %s\n", status.Free(dir))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output results in JSON format")

	return cmd
}

func writeJSON(w io.Writer, entries []types.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func entryText(name string, isDir bool) string {
	if isDir {
		return dirText(name)
	}
	return name
}

// relativeName shows a search match relative to the searched directory.
func relativeName(dir string, e types.Entry) string {
	name, err := filepath.Rel(dir, e.Path)
	if err != nil {
		name = e.Path
	}
	if e.IsDir {
		name += "/"
	}
	return name
}

func longLine(e types.Entry) string {
	kind, size := "?", "?"
	if info, err := status.Scan(e.Path); err == nil {
		kind = info.ContentType
		if !info.IsDir {
			size = info.HumanSize()
		} else {
			size = "-"
		}
	}
	return fmt.Sprintf("%-28s %10s  %s", kind, size, entryText(e.String(), e.IsDir))
}
