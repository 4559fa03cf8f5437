// Package cli wires the passcheck command line interface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	passcheck "github.com/baditaflorin/go_password_strength"
	"github.com/baditaflorin/go_password_strength/internal/config"
	"github.com/baditaflorin/go_password_strength/internal/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrChecksFailed reports that evaluation ran to completion but at least one
// enabled rule failed. The report has already been rendered when this is
// returned; it only drives the exit code.
var ErrChecksFailed = errors.New("password failed one or more checks")

type rootFlags struct {
	configPath string
	wordlist   string
	minLength  int
	similarity int
	ignore     []string
	noColor    bool
	verbose    bool
}

// NewRootCommand creates and returns the root cobra command for passcheck
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "passcheck [password]",
		Short: "Check a password against a configurable set of strength rules",
		Long: `Passcheck evaluates a candidate password against four independent
strength rules: minimum length, numeric characters, special characters and
fuzzy collisions against a wordlist of known weak passwords.

Each rule reports success, failure or ignored, and the summary line gives
the pass percentage over the rules that actually ran. Without a password
argument the password is read interactively (hidden on a terminal).

Exit code: 0 when every enabled rule passed, 1 otherwise.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&flags.wordlist, "wordlist", "w", "", "wordlist file to check against (default: internal wordlist)")
	cmd.Flags().IntVarP(&flags.minLength, "min-length", "m", passcheck.DefaultMinLength, "minimum password length")
	cmd.Flags().IntVarP(&flags.similarity, "similarity", "s", passcheck.DefaultSimilarityPercent, "minimum similarity percentage for a wordlist match to count as a collision")
	cmd.Flags().StringSliceVarP(&flags.ignore, "ignore", "i", nil, "rules to ignore: min-length, digits, special-chars, wordlist")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colorized output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable structured log output")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	ignored, err := cfg.IgnoredRules()
	if err != nil {
		return err
	}

	opts := []passcheck.Option{
		passcheck.WithMinLength(cfg.MinLength),
		passcheck.WithSimilarityPercent(cfg.Similarity),
		passcheck.WithIgnore(ignored...),
	}
	if cfg.Wordlist != "" {
		opts = append(opts, passcheck.WithWordlistPath(cfg.Wordlist))
	}
	if !cfg.Verbose {
		opts = append(opts, passcheck.WithQuietLogging())
	}

	checker, err := passcheck.New(opts...)
	if err != nil {
		return err
	}

	password, err := resolvePassword(cmd, args)
	if err != nil {
		return err
	}

	report, err := checker.Evaluate(cmd.Context(), password)
	if err != nil {
		return err
	}

	render.New(cmd.OutOrStdout(), cfg.NoColor).Render(report)

	if !report.Summary.AllPassed() {
		return ErrChecksFailed
	}
	return nil
}

// resolveConfig merges defaults, the optional config file and explicit
// flags, in that order of precedence.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("min-length") {
		cfg.MinLength = flags.minLength
	}
	if cmd.Flags().Changed("similarity") {
		cfg.Similarity = flags.similarity
	}
	if cmd.Flags().Changed("wordlist") {
		cfg.Wordlist = flags.wordlist
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if flags.noColor {
		cfg.NoColor = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePassword takes the password from the positional argument, or reads
// it interactively when none was given. Any trailing line terminator is
// stripped before the core sees it.
func resolvePassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, "Please enter the password to check.\n> ")

	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		// Hidden read on a real terminal.
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("no password provided as argument and failed to read password from stdin: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password provided as argument and failed to read password from stdin: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Execute runs the root command and maps the outcome to an exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, ErrChecksFailed) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
