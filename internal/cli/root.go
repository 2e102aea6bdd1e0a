package cli

import (
	"io"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wesen/plotgrid/internal/config"
	"github.com/wesen/plotgrid/internal/controller"
	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/plotui"
	"github.com/wesen/plotgrid/internal/quiz"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	seed       uint64
	logFile    string
	logLevel   string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "plotgrid",
		Short:         "Plot integer points on a coordinate plane and quiz yourself",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.PathFromEnv(), "path to YAML config")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "quiz target seed (0 picks one at random)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", config.LogFileFromEnv(), "append logs to this file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.AddCommand(newSnapshotCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Quiz.Seed = opts.seed
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger described by cfg. Without a log file,
// output goes to fallback. The returned func closes the file, if any.
func newLogger(cfg config.Config, fallback io.Writer) (*logrus.Logger, func(), error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if cfg.Log.File == "" {
		log.SetOutput(fallback)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}

// randSource returns the quiz random source for seed; 0 means unseeded.
func randSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so logs go to a file or nowhere.
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	r := cfg.Range()
	log.WithFields(logrus.Fields{"min": r.Min, "max": r.Max, "seed": cfg.Quiz.Seed}).Info("starting")
	engine := quiz.NewEngine(r, randSource(cfg.Quiz.Seed), log)
	ctrl := controller.New(plane.NewMapper(r, 600), engine, log)

	p := tea.NewProgram(plotui.NewModel(ctrl, log))
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info("exited")
	return nil
}
