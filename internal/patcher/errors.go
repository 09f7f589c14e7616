package patcher

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingTarget is matched by errors returned when the target is not
	// an existing regular file.
	ErrMissingTarget = errors.New("target file not found")
	// ErrWriteFailure is matched by errors returned when the target exists
	// but could not be overwritten.
	ErrWriteFailure = errors.New("target file write failed")
)

// MissingTargetError reports that the target path does not exist.
type MissingTargetError struct {
	Path string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

func (e *MissingTargetError) Is(target error) bool {
	return target == ErrMissingTarget
}

// NotRegularFileError reports that the target exists but is a directory,
// device, socket or similar.
type NotRegularFileError struct {
	Path string
	Mode os.FileMode
}

func (e *NotRegularFileError) Error() string {
	return fmt.Sprintf("%s is not a regular file (mode %s)", e.Path, e.Mode)
}

func (e *NotRegularFileError) Is(target error) bool {
	return target == ErrMissingTarget
}

// WriteError wraps the filesystem error that stopped the overwrite.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}
