package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wofiles/internal/config"
	"wofiles/internal/theme"
)

// newThemeCmd creates the theme command group
func newThemeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage .wo themes",
		Long:  `List, import and inspect the themes offered by the theme selector.`,
	}

	cmd.AddCommand(newThemeListCmd(opts))
	cmd.AddCommand(newThemeImportCmd(opts))
	cmd.AddCommand(newThemeShowCmd(opts))

	return cmd
}

func newThemeListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List builtin and saved themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.newSession("", false)
			if err != nil {
				return err
			}

			active := sess.ActiveTheme()
			out := cmd.OutOrStdout()
			for _, name := range sess.ThemeNames() {
				if name == active {
					fmt.Fprintln(out, primaryText("* "+name))
					continue
				}
				fmt.Fprintln(out, "  "+name)
			}
			return nil
		},
	}
}

func newThemeImportCmd(opts *rootOptions) *cobra.Command {
	var makeDefault bool

	cmd := &cobra.Command{
		Use:   "import <file.wo>",
		Short: "Copy a theme file into the managed theme directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.newSession("", false)
			if err != nil {
				return err
			}

			def, err := sess.ImportTheme(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported theme %s into %s\n", primaryText(def.Name), sess.Themes().Dir())

			if !makeDefault {
				return nil
			}
			cfg := sess.Config()
			cfg.Theme.Default = def.Name
			if err := config.SaveConfig(cfg, opts.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default theme is now %s\n", def.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&makeDefault, "default", "d", false, "Apply the theme at startup from now on")

	return cmd
}

func newThemeShowCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show the colours and style of a theme",
		Long:  `Show the colours a theme sets and its style text. Without a name the active theme is shown.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.newSession("", false)
			if err != nil {
				return err
			}

			name := firstArg(args)
			if name == "" {
				name = sess.ActiveTheme()
			}
			style, err := sess.Themes().Style(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprint(out, style)
				return nil
			}

			p := theme.ExtractPalette(style)
			fmt.Fprintln(out, primaryText("Theme: "+name))
			fmt.Fprintf(out, "Background: %s\n", orNone(theme.Hex(p.Background)))
			fmt.Fprintf(out, "Foreground: %s\n", orNone(theme.Hex(p.Foreground)))
			fmt.Fprintf(out, "Accent:     %s\n", orNone(theme.Hex(p.Accent)))
			fmt.Fprintln(out, mutedText(style))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the style text")

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
