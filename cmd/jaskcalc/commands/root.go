package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/logging"
	"github.com/jask/jaskcalc/internal/tui"
)

type rootOptions struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the interactive calculator.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "jaskcalc",
		Short:        "Terminal calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			opts.cfg = cfg
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $JASKCALC_CONFIG or ~/.config/jaskcalc/config.toml)")

	root.AddCommand(pressCmd(opts), configCmd(opts))
	return root
}

func formatterFor(cfg config.Config) (calc.Formatter, error) {
	tag, err := language.Parse(cfg.UI.Locale)
	if err != nil {
		return calc.Formatter{}, fmt.Errorf("ui.locale %q: %w", cfg.UI.Locale, err)
	}
	return calc.NewFormatter(tag), nil
}

func runInteractive(opts *rootOptions) error {
	formatter, err := formatterFor(opts.cfg)
	if err != nil {
		return err
	}
	keys := tui.NewKeyRegistry()
	if err := keys.ApplyOverrides(opts.cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	opts.logger.Info("start",
		zap.String("locale", opts.cfg.UI.Locale),
		zap.Int("tape_size", opts.cfg.UI.TapeSize),
		zap.Bool("mouse", opts.cfg.UI.Mouse),
	)

	app := tui.New(tui.Options{
		Formatter: formatter,
		TapeSize:  opts.cfg.UI.TapeSize,
		Keys:      keys,
		Logger:    opts.logger,
	})
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app, programOpts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
