// Package commands implements the smhinfo CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-scanm/internal/cli/output"
	"github.com/robert-malhotra/go-scanm/internal/config"
	"github.com/robert-malhotra/go-scanm/internal/logger"
	"github.com/robert-malhotra/go-scanm/scanm"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// session holds what every subcommand needs once flags and configuration
// are resolved.
type session struct {
	cfgFile  string
	logLevel string
	format   string
	verbose  bool

	cfg     *config.Config
	printer *output.Printer
}

// loadOptions returns the header load options for this session.
func (s *session) loadOptions() []scanm.LoadOption {
	return []scanm.LoadOption{scanm.WithVerbosity(s.cfg.Verbose)}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "smhinfo",
		Short: "Inspect ScanM header files",
		Long: `smhinfo reads the header (.smh) of a ScanM recording and prints its
acquisition settings or the full parameter table.

A recording can be named with or without extension; a pixel data path
(.smp) is mapped to its header.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (YAML)")
	flags.StringVar(&s.logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR)")
	flags.StringVarP(&s.format, "output", "o", "", "output format (table|json|yaml)")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log every header line while loading")

	root.AddCommand(newSummaryCmd(s))
	root.AddCommand(newParamsCmd(s))
	root.AddCommand(newVersionCmd())

	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// resolve merges configuration with flags; flags win.
func (s *session) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(s.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = s.logLevel
	}
	if flags.Changed("output") {
		cfg.Output = s.format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = s.verbose
	}
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.printer = output.NewPrinter(cmd.OutOrStdout(), format)
	return nil
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}
