package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/pmpv"
	"github.com/mattn/pmpv/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultPrompt = "> "

type options struct {
	prompt   string
	noColor  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pmpv",
		Short: "Line based integer calculator with variables",
		Long: `pmpv reads expressions from standard input, one per line, and prints
their values. Expressions are integers, variables, '+', '-' and parentheses,
evaluated strictly from left to right. A line of the form "name = expr"
binds a variable and prints an empty line.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("pmpv %s\n", version.String()))

	flags := cmd.Flags()
	flags.StringVar(&opts.prompt, "prompt", os.Getenv("PMPV_PROMPT"), "Prompt printed before each line (default \"> \" on a terminal, PMPV_PROMPT)")
	flags.BoolVar(&opts.noColor, "no-color", os.Getenv("NO_COLOR") != "", "Do not color diagnostics (NO_COLOR)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log messages above specified level (trace, debug, info, warn, error, fatal, panic)")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	in := cmd.InOrStdin()
	prompt := opts.prompt
	if prompt == "" && !cmd.Flags().Changed("prompt") && isTerminal(in) {
		prompt = defaultPrompt
	}
	color := !opts.noColor && isTerminal(cmd.ErrOrStderr())
	logger.Debugf("prompt=%q color=%v", prompt, color)

	interp := pmpv.NewInterpreter(
		pmpv.WithOutput(cmd.OutOrStdout()),
		pmpv.WithErrOutput(cmd.ErrOrStderr()),
		pmpv.WithPrompt(prompt),
		pmpv.WithColor(color),
		pmpv.WithLogger(logger),
	)
	if err := interp.Run(in); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debugf("variables at exit: %v", interp.Vars())
	return nil
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
