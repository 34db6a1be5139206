// Package cli implements the affixmorph command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/affixmorph/internal/config"
	"github.com/az-ai-labs/affixmorph/internal/logger"
	"github.com/az-ai-labs/affixmorph/internal/runner"
)

// Execute runs the root command against the process streams. An
// interrupt cancels the running batch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "affixmorph: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// flags holds the persistent flags shared by every subcommand.
type flags struct {
	configPath    string
	dictionaries  []string
	affixes       []string
	depth         int
	lowercase     bool
	normalization string
	language      string
	exceptions    string
	format        string
	workers       int
	cacheSize     int
	logLevel      string
	logFormat     string
}

// NewRootCmd builds the command tree. Subcommands read words from in,
// write results to out and logs to errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "affixmorph",
		Short:         "Stem and expand words with Hunspell-style affix grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file (default ./affixmorph.yaml or $AFFIXMORPH_CONFIG)")
	pf.StringArrayVarP(&f.dictionaries, "dict", "d", nil, "dictionary file; repeat to add pairs")
	pf.StringArrayVarP(&f.affixes, "affix", "a", nil, "affix grammar file; repeat to add pairs")
	pf.IntVarP(&f.depth, "depth", "p", 5, "maximum number of chained rules in expansion")
	pf.BoolVarP(&f.lowercase, "lowercase", "l", false, "lower-case grammar, dictionary and input")
	pf.StringVar(&f.normalization, "normalization", config.NormalizationNFC, "input normalization: nfc|none")
	pf.StringVar(&f.language, "language", "und", "BCP 47 tag selecting the lower-casing rules")
	pf.StringVarP(&f.exceptions, "exceptions", "e", "", "file of lemma:form pairs to leave out of expansion output")
	pf.StringVar(&f.format, "format", config.FormatText, "output format: text|json|yaml")
	pf.IntVar(&f.workers, "workers", 4, "parallel workers for batch modes")
	pf.IntVar(&f.cacheSize, "cache-size", 10000, "stem cache entries per pair (0 disables)")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format: text|json")

	cmd.AddCommand(
		stemCmd(f),
		expandCmd(f),
		expandAllCmd(f),
		wordListCmd(f),
		expandDictCmd(f),
		roundTripCmd(f),
	)
	return cmd
}

// loadConfig merges the config file, environment and changed flags, in
// increasing priority, validates the result and installs the logger.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("dict") {
		cfg.Dictionaries = f.dictionaries
	}
	if fs.Changed("affix") {
		cfg.Affixes = f.affixes
	}
	if fs.Changed("depth") {
		cfg.Depth = f.depth
	}
	if fs.Changed("lowercase") {
		cfg.Lowercase = f.lowercase
	}
	if fs.Changed("normalization") {
		cfg.Normalization = f.normalization
	}
	if fs.Changed("language") {
		cfg.Language = f.language
	}
	if fs.Changed("exceptions") {
		cfg.Exceptions = f.exceptions
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("cache-size") {
		cfg.CacheSize = f.cacheSize
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, &runner.OpError{Op: "cli.config", Kind: runner.KindInvalidConfig, Err: err}
	}

	log := logger.Setup(cfg.Log, cmd.ErrOrStderr())
	return cfg, log, nil
}

// load prepares a runner for cmd.
func load(cmd *cobra.Command, f *flags) (*runner.Runner, *config.Config, error) {
	cfg, log, err := loadConfig(cmd, f)
	if err != nil {
		return nil, nil, err
	}
	r, err := runner.Load(cmd.Context(), cfg, log)
	if err != nil {
		log.Error("load.failed", "error", err)
		return nil, nil, err
	}
	return r, cfg, nil
}
