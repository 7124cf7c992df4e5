package main

import (
	"time"

	"github.com/spf13/cobra"

	"wofiles/internal/config"
	"wofiles/internal/gui"
	"wofiles/internal/log"
	"wofiles/internal/session"
	"wofiles/internal/watch"
)

// rootOptions is shared by every subcommand. cfg is filled in by the
// persistent pre-run.
type rootOptions struct {
	cfgFile  string
	debug    bool
	jsonLogs bool
	all      bool
	dryRun   bool

	cfg        *config.Config
	configPath string
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// GUI, or the terminal UI when the binary was built without one.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wofiles [directory]",
		Short: "A themeable file explorer",
		Long: logo + `
wofiles browses directories as an icon grid, searches them by name and
dresses itself in .wo themes. It runs as a desktop window, a terminal UI,
or as plain commands for scripts.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if gui.IsGUIAvailable() {
				return runGUI(opts, args)
			}
			return runTUI(opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/wofiles/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "log-json", false, "write logs as JSON lines")
	rootCmd.PersistentFlags().BoolVarP(&opts.all, "all", "a", false, "show dotfiles (privileged view)")
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "log file operations instead of running them")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newStatCmd(opts))
	rootCmd.AddCommand(newThemeCmd(opts))
	rootCmd.AddCommand(newGUICmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))

	return rootCmd
}

// load sets up logging and reads the configuration. A config that cannot
// be read is reported and replaced by the defaults.
func (o *rootOptions) load() {
	if o.jsonLogs {
		log.Configure(log.WithJSON())
	}
	log.SetDebug(o.debug)

	path := o.cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.LogWithError(err).Warn("No config location, using defaults")
			o.cfg = config.New()
			return
		}
	}
	o.configPath = path

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		log.LogWithFields(log.F("path", path)).Warnf("Using default settings: %v", err)
		cfg = config.New()
	}
	o.cfg = cfg
}

// newSession opens a session at dir, or at the configured start directory
// when dir is empty. With follow set and watching enabled in the config, a
// watcher is attached and returned; the caller starts and stops it.
func (o *rootOptions) newSession(dir string, follow bool) (*session.Session, *watch.Watcher, error) {
	if o.cfg == nil {
		o.load()
	}
	cfg := o.cfg

	sessOpts := []session.Option{session.WithConfigPath(o.configPath)}
	if dir != "" {
		sessOpts = append(sessOpts, session.WithStartDir(dir))
	}
	if o.dryRun {
		sessOpts = append(sessOpts, session.WithDryRun())
	}

	var w *watch.Watcher
	if follow && cfg.Watch.Enabled {
		var err error
		w, err = watch.New(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond)
		if err != nil {
			log.LogWithError(err).Warn("Auto-refresh disabled")
			w = nil
		} else {
			sessOpts = append(sessOpts, session.WithWatcher(w))
		}
	}

	sess, err := session.New(cfg, sessOpts...)
	if err != nil {
		if w != nil {
			w.Stop()
		}
		return nil, nil, err
	}
	if o.all {
		sess.SetPrivileged(true)
	}
	return sess, w, nil
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
