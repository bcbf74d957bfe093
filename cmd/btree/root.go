package main

import (
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/internal/config"
	"github.com/katalvlaran/bintree/internal/logger"
	"github.com/katalvlaran/bintree/internal/store"
)

// Swapped by tests.
var (
	appFs     afero.Fs          = afero.NewOsFs()
	lookupEnv config.LookupFunc = os.LookupEnv
	clock                       = time.Now
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))

// app carries the resolved settings to every subcommand.
type app struct {
	cfg   config.Config
	store *store.Store
}

// rootFlags mirror config keys; only flags set on the command line win.
type rootFlags struct {
	file     string
	skipDeep int
	charset  string
	seed     int64
	logLevel string
	logDir   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "btree",
		Short:         "Generate, store and analyse binary trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.file, "file", config.DefaultFile, "tree file ("+config.KeyFile+")")
	pf.IntVar(&f.skipDeep, "skip-deep", config.DefaultSkipDeep, "console depth ceiling, -1 for none ("+config.KeySkipDeep+")")
	pf.StringVar(&f.charset, "charset", config.DefaultCharset, "tree file encoding ("+config.KeyCharset+")")
	pf.Int64Var(&f.seed, "seed", 0, "seed for generated values ("+config.KeySeed+")")
	pf.StringVar(&f.logLevel, "log", "", "log level: debug, info, warn, error ("+config.KeyLog+")")
	pf.StringVar(&f.logDir, "log-dir", "", "log directory ("+config.KeyLogDir+")")

	cmd.AddCommand(
		newRunCmd(a),
		newGenerateCmd(a),
		newPrintCmd(a),
		newRatioCmd(a),
		newLevelsCmd(a),
		newOrderCmd(a),
		newShowCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// init resolves configuration (defaults < env files < environment < flags),
// starts logging and opens the store.
func (a *app) init(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load(appFs, lookupEnv)
	if err != nil {
		return errors.WithMessage(err, "config")
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = f.file
	}
	if flags.Changed("skip-deep") {
		if f.skipDeep < -1 {
			return errors.Errorf("--skip-deep=%d, want ≥ -1", f.skipDeep)
		}
		cfg.SkipDeep = f.skipDeep
	}
	if flags.Changed("charset") {
		cfg.Charset = f.charset
	}
	if flags.Changed("seed") {
		cfg.Seed, cfg.HasSeed = f.seed, true
	}
	if flags.Changed("log") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = f.logDir
	}
	if !cfg.HasSeed {
		cfg.Seed = clock().UnixNano()
	}

	if err = logger.Init(logger.Options{
		Enabled: cfg.LogLevel != "",
		LogDir:  cfg.LogDir,
		Level:   logger.ParseLevel(cfg.LogLevel),
		Fs:      appFs,
	}); err != nil {
		return errors.WithMessage(err, "logger")
	}

	st, err := store.New(appFs, cfg.Charset)
	if err != nil {
		return err
	}

	a.cfg, a.store = cfg, st
	logger.Debug("config resolved", "file", cfg.File, "skipDeep", cfg.SkipDeep, "charset", st.Charset())
	return nil
}

func heading(s string) string {
	return headingStyle.Render(s)
}
