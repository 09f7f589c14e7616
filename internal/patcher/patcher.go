// Package patcher overwrites a single project file with fixed content.
package patcher

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/tab1k/trucking-desk-mobile/internal/fs"

	"go.uber.org/zap"
)

// Config describes one overwrite. TargetPath is slash-separated and relative
// to Root; an empty Root means the current working directory.
type Config struct {
	TargetPath  string
	PayloadText string
	Root        string
}

// Result describes a completed overwrite.
type Result struct {
	// Path is the target as configured, for display.
	Path string
	// AbsPath is the file that was written.
	AbsPath string
	Bytes   int
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(p *Patcher) {
		if log != nil {
			p.log = log
		}
	}
}

// Patcher replaces the contents of one file with a fixed string.
type Patcher struct {
	cfg Config
	log *zap.Logger
}

// New creates a Patcher for cfg.
func New(cfg Config, opts ...Option) *Patcher {
	p := &Patcher{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply checks that the target is an existing regular file and overwrites it
// with the payload. Nothing is written when the check fails, and no backup of
// the previous contents is kept.
func (p *Patcher) Apply() (Result, error) {
	resolver, err := fs.NewPathResolver(p.cfg.Root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve root directory: %w", err)
	}
	absPath := resolver.Resolve(p.cfg.TargetPath)
	p.log.Debug("resolved target",
		zap.String("root", resolver.Root()),
		zap.String("path", absPath))

	info, err := os.Stat(absPath)
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		p.log.Debug("target missing", zap.String("path", absPath), zap.Error(err))
		return Result{}, &MissingTargetError{Path: p.cfg.TargetPath}
	case err != nil:
		return Result{}, &WriteError{Path: p.cfg.TargetPath, Err: err}
	case !info.Mode().IsRegular():
		return Result{}, &NotRegularFileError{Path: p.cfg.TargetPath, Mode: info.Mode()}
	}
	p.log.Debug("target stat",
		zap.String("path", absPath),
		zap.Int64("size", info.Size()),
		zap.Stringer("mode", info.Mode()))

	if err := fs.Overwrite(absPath, []byte(p.cfg.PayloadText)); err != nil {
		return Result{}, &WriteError{Path: p.cfg.TargetPath, Err: err}
	}

	if ce := p.log.Check(zap.DebugLevel, "payload written"); ce != nil {
		sum, _ := fs.GetFileSHA256(absPath)
		ce.Write(
			zap.String("path", absPath),
			zap.Int("bytes", len(p.cfg.PayloadText)),
			zap.String("sha256", sum))
	}

	return Result{
		Path:    p.cfg.TargetPath,
		AbsPath: absPath,
		Bytes:   len(p.cfg.PayloadText),
	}, nil
}
