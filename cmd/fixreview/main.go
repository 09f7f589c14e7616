// Command fixreview overwrites src/reviews/views.py in the trucking_desk
// project so that only an order's sender can review its driver.
//
// Run it from the trucking_desk directory (or pass --root), then restart the
// Django server.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/tab1k/trucking-desk-mobile/cli"
	"github.com/tab1k/trucking-desk-mobile/fixreview"
	"github.com/tab1k/trucking-desk-mobile/internal/patcher"
	"github.com/tab1k/trucking-desk-mobile/internal/ui"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := cli.ParseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		// ParseFlags already printed the error and usage.
		return 1
	}

	logger := newLogger(cfg.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	printer := ui.New(stdout, stderr)
	summary, err := fixreview.New(cfg, logger).Execute()
	if err != nil {
		reportError(printer, err)
		return 1
	}

	for _, path := range summary.Modified {
		printer.Success("✅ Updated %s", path)
	}
	printer.Warning("⚠️  %s", summary.Message)
	return 0
}

func reportError(printer *ui.Printer, err error) {
	var (
		missing    *patcher.MissingTargetError
		notRegular *patcher.NotRegularFileError
		detailed   *fixreview.DetailedError
	)
	switch {
	case errors.As(err, &missing):
		printer.Error("Error: %s not found. Make sure you're in trucking_desk directory.", missing.Path)
	case errors.As(err, &notRegular):
		printer.Error("Error: %s is not a regular file.", notRegular.Path)
	case errors.As(err, &detailed):
		printer.Error("Error: %v", err)
		printer.Stack(detailed.Stack)
	default:
		printer.Error("Error: %v", err)
	}
}

// newLogger returns a JSON debug logger on w when verbose is set, and a
// no-op logger otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	return zap.New(core).Named("fixreview")
}
