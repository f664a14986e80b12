package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hailam/genfixture/internal/adapters/random"
	"github.com/hailam/genfixture/internal/application"
	"github.com/hailam/genfixture/internal/ports"
)

const doneMessage = "[+] Done!"

// usageText is printed to stdout whenever the positional argument count is not one.
func usageText(program string) string {
	return fmt.Sprintf("\nGenerates CSV files for testing purposes\n"+
		"\nUsage: %s custome_file_name.csv\n"+
		"\nExample: %s sample_set_1.csv\n\n", program, program)
}

type rootOptions struct {
	seed     uint64
	xlsxPath string
	verbose  bool
}

func newRootCmd(sinks ports.SinkFactory, program string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "genfixture <output_file>",
		Short: "Generates CSV files for testing purposes.",
		Long: `genfixture writes a semicolon-delimited product/price fixture: the header
"PRODUCT NAME;PRICE" followed by 1000 rows of random test_product_N names
and prices between 0.01 and 10.0. An existing file is overwritten.`,
		Args:         cobra.ArbitraryArgs, // a wrong count prints usage instead of failing
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprint(cmd.OutOrStdout(), usageText(program))
				return nil
			}

			logger := newLogger(cmd, opts.verbose)
			service := application.NewFixtureService(sinks, random.New(opts.seed), logger)

			targets := []application.Target{{Path: args[0], Type: ports.FileTypeDelimited}}
			if opts.xlsxPath != "" {
				targets = append(targets, application.Target{Path: opts.xlsxPath, Type: ports.FileTypeXLSX})
			}

			stop := startSpinner(cmd)
			err := service.CreateFixture(targets...)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), doneMessage)
			return nil
		},
	}

	// Anything the flag parser rejects, and -h/--help, falls back to the usage
	// text. A path starting with a dash must follow "--".
	cmd.SetFlagErrorFunc(func(c *cobra.Command, _ error) error {
		fmt.Fprint(c.OutOrStdout(), usageText(program))
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usageText(program))
	})

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible fixture (0 picks a random seed)")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "Also write the same rows to this .xlsx workbook")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	return cmd
}

func newLogger(cmd *cobra.Command, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// startSpinner shows progress on stderr. The spinner stays silent unless
// stderr is a terminal, so piped and captured output is unaffected.
func startSpinner(cmd *cobra.Command) (stop func()) {
	f, ok := cmd.ErrOrStderr().(*os.File)
	if !ok {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " writing fixture"
	s.Start()
	return s.Stop
}
