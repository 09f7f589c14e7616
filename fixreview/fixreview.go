package fixreview

import (
	"fmt"
	"runtime/debug"

	"github.com/tab1k/trucking-desk-mobile/cli"
	"github.com/tab1k/trucking-desk-mobile/internal/patcher"
	"github.com/tab1k/trucking-desk-mobile/internal/payload"
	"github.com/tab1k/trucking-desk-mobile/model"

	"go.uber.org/zap"
)

// RestartReminder is reported after a successful overwrite.
const RestartReminder = "Remember to restart Django server for changes to take effect!"

type applier interface {
	Apply() (patcher.Result, error)
}

// App orchestrates the entire application logic.
type App struct {
	cfg     *cli.Config
	patcher applier
	log     *zap.Logger
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App that writes the embedded review handler under
// cfg.Root. A nil log discards diagnostics.
func New(cfg *cli.Config, log *zap.Logger) *App {
	if cfg == nil {
		cfg = &cli.Config{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := patcher.New(patcher.Config{
		TargetPath:  payload.TargetPath,
		PayloadText: payload.Text,
		Root:        cfg.Root,
	}, patcher.WithLogger(log))

	return &App{
		cfg:     cfg,
		patcher: p,
		log:     log,
	}
}

// Execute overwrites the target file. On failure the returned summary lists
// the target as failed alongside the error.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
			summary = model.Summary{Failed: []string{payload.TargetPath}}
		}
	}()

	res, err := a.patcher.Apply()
	if err != nil {
		a.log.Debug("apply failed", zap.Error(err))
		return model.Summary{Failed: []string{payload.TargetPath}}, err
	}

	return model.Summary{
		Modified:     []string{res.Path},
		Message:      RestartReminder,
		BytesWritten: res.Bytes,
	}, nil
}
