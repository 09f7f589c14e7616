package fixreview

import (
	"errors"
	"testing"

	"github.com/tab1k/trucking-desk-mobile/internal/patcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applierFunc func() (patcher.Result, error)

func (f applierFunc) Apply() (patcher.Result, error) { return f() }

func TestNewWithNilArguments(t *testing.T) {
	app := New(nil, nil)
	require.NotNil(t, app.cfg)
	require.NotNil(t, app.log)
	require.NotNil(t, app.patcher)
}

func TestExecuteRecoversPanic(t *testing.T) {
	app := New(nil, nil)
	app.patcher = applierFunc(func() (patcher.Result, error) {
		panic("boom")
	})

	summary, err := app.Execute()
	require.Error(t, err)

	var detailed *DetailedError
	require.True(t, errors.As(err, &detailed))
	assert.Equal(t, "internal panic: boom", err.Error())
	assert.Contains(t, string(detailed.Stack), "goroutine")
	assert.Equal(t, []string{"src/reviews/views.py"}, summary.Failed)
	assert.Empty(t, summary.Modified)
}

func TestExecutePassesErrorsThrough(t *testing.T) {
	want := &patcher.WriteError{Path: "src/reviews/views.py", Err: errors.New("disk full")}
	app := New(nil, nil)
	app.patcher = applierFunc(func() (patcher.Result, error) {
		return patcher.Result{}, want
	})

	summary, err := app.Execute()
	assert.Same(t, want, err)
	assert.True(t, errors.Is(err, patcher.ErrWriteFailure))
	assert.Equal(t, []string{"src/reviews/views.py"}, summary.Failed)
}

func TestExecuteSummary(t *testing.T) {
	app := New(nil, nil)
	app.patcher = applierFunc(func() (patcher.Result, error) {
		return patcher.Result{Path: "src/reviews/views.py", Bytes: 42}, nil
	})

	summary, err := app.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/reviews/views.py"}, summary.Modified)
	assert.Empty(t, summary.Failed)
	assert.Equal(t, RestartReminder, summary.Message)
	assert.Equal(t, 42, summary.BytesWritten)
}
