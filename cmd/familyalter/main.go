package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"familyalter/internal/bootstrap"
	"familyalter/internal/platform/config"
	"familyalter/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	home      string
	config    string
	verbose   bool
	ephemeral bool
	seed      uint64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{home: defaultHome()}

	root := &cobra.Command{
		Use:           "familyalter",
		Short:         "Family Altar: worship music and a Bible story for each family session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.home, "home", flags.home, "profile directory holding state and config")
	pf.StringVar(&flags.config, "config", "", "config file (default <home>/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep session state in memory only")
	pf.Uint64Var(&flags.seed, "seed", 0, "seed for reproducible worship picks")

	root.AddCommand(newConvertCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newHistoryCmd(flags))
	root.AddCommand(newStateCmd(flags))
	return root
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".familyalter"
	}
	return filepath.Join(home, ".familyalter")
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.home, flags.config)
	if err != nil {
		return config.Config{}, err
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// loadApp wires the application with a stderr logger. The caller closes it.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logger, options(cmd, flags))
}

func options(cmd *cobra.Command, flags *rootFlags) bootstrap.Options {
	return bootstrap.Options{
		Ephemeral: flags.ephemeral,
		Seed:      flags.seed,
		HasSeed:   cmd.Flags().Changed("seed"),
	}
}

func newConvertCmd(flags *rootFlags) *cobra.Command {
	var rawDir, outDir string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the raw CSV tables into the JSON catalog bundles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if rawDir == "" {
				rawDir = cfg.RawDir
			}
			if outDir == "" {
				outDir = cfg.OutDir
			}
			logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			// conversion never opens the state store
			app, err := bootstrap.New(cfg, logger, bootstrap.Options{Ephemeral: true})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out, err := app.DatasetCLI.Convert(context.Background(), rawDir, outDir)
			if err != nil {
				return err
			}
			for _, r := range out.Results {
				if r.Err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error converting %s: %v\n", r.Source, r.Err)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "converted %s to %s (%d records)\n", r.Source, r.Destination, r.Records)
			}
			if n := out.Failed(); n > 0 && n == len(out.Results) {
				return fmt.Errorf("conversion failed for all %d tables", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawDir, "raw-dir", "", "directory holding the CSV sources (default from config)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory receiving the JSON bundles (default from config)")
	return cmd
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the Family Altar terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.NewFile(cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			app, err := bootstrap.New(cfg, logger, options(cmd, flags))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			logger.Info("tui started", zap.String("home", cfg.HomePath))
			return bootstrap.RunTUI(app)
		},
	}
}

func newSessionCmd(flags *rootFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Family session commands"}

	session.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Start a new session: pick a song and advance to the next story",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.NewSession(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "date: %s\n", out.Record.Date)
			_, _ = fmt.Fprintf(w, "worship: %s\n", out.Record.Worship)
			if out.View.HasWorship {
				_, _ = fmt.Fprintf(w, "listen: %s\n", out.View.Worship.URL)
			}
			_, _ = fmt.Fprintf(w, "story: #%d %s\n", out.Record.StoryNumber, out.Record.Story)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the current worship pick and story",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			view, err := app.SessionCLI.Current(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if view.HasWorship {
				_, _ = fmt.Fprintf(w, "worship: %s\nlisten: %s\n", view.Worship.Name, view.Worship.URL)
			} else {
				_, _ = fmt.Fprintln(w, "worship: Loading music...")
			}
			_, _ = fmt.Fprintf(w, "story: #%d %s\n", view.Story.Number, view.Story.Title)
			_, _ = fmt.Fprintf(w, "cursor=%d stories=%d tracks=%d sessions=%d\n", view.StoryIndex, view.StoryCount, view.TrackCount, len(view.History))
			return nil
		},
	})
	return session
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Past session commands"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List past sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			records, err := app.SessionCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s (#%d)\n", r.Date, r.Worship, r.Story, r.StoryNumber)
			}
			return nil
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "export <path>",
		Short: "Write the session history as a Markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Export(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d sessions to %s\n", out.Sessions, out.Path)
			return nil
		},
	})
	return history
}

func newStateCmd(flags *rootFlags) *cobra.Command {
	state := &cobra.Command{Use: "state", Short: "Persisted state maintenance"}
	state.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the session history and the story cursor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.SessionCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "state reset")
			return nil
		},
	})
	return state
}
