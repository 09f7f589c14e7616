package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	// Root is the trucking_desk project directory. Empty means the current
	// working directory.
	Root    string
	Verbose bool
}

// ParseFlags parses args (without the program name) using pflag. Errors are
// already printed to output when it returns; pflag.ErrHelp is returned for
// -h/--help.
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	flags := pflag.NewFlagSet("fixreview", pflag.ContinueOnError)
	flags.SetOutput(output)

	// Define flags
	flags.StringVarP(&cfg.Root, "root", "C", "", "Run as if started in this directory (default: current directory).")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug logs to stderr.")

	flags.Usage = func() {
		fmt.Fprintln(output, "Usage: fixreview [flags]")
		fmt.Fprintln(output, "\nOverwrite src/reviews/views.py so that only the sender can review the driver.")
		fmt.Fprintln(output, "Run from the trucking_desk directory, then restart the Django server.")
		fmt.Fprintln(output, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		// pflag prints usage for --help itself, but stays quiet on other
		// errors under ContinueOnError.
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(output, "Error: %v\n", err)
			flags.Usage()
		}
		return nil, err
	}

	if flags.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
		fmt.Fprintf(output, "Error: %v\n", err)
		flags.Usage()
		return nil, err
	}

	return cfg, nil
}
