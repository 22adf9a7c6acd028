package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type fakeService struct {
	name     string
	startErr error
	stopErr  error
	stopped  bool
	block    bool
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return nil
	}
	return f.startErr
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped = true
	return f.stopErr
}

func TestRunnerStopsAllServicesOnCancel(t *testing.T) {
	a := &fakeService{name: "a", block: true}
	b := &fakeService{name: "b", block: true}
	runner := NewRunner(a, b)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	require.NoError(t, runner.Run(ctx, time.Second, nil))
	assert.True(t, a.stopped)
	assert.True(t, b.stopped)
}

func TestRunnerCombinesStartAndStopErrors(t *testing.T) {
	startErr := errors.New("listen failed")
	stopErr := errors.New("shutdown failed")
	closeErr := errors.New("close failed")

	failing := &fakeService{name: "http", startErr: startErr}
	other := &fakeService{name: "worker", block: true, stopErr: stopErr}
	runner := NewRunner(failing, other)
	runner.closers = append(runner.closers, func() error { return closeErr })

	err := runner.Run(context.Background(), time.Second, nil)
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	assert.ErrorIs(t, err, startErr)
	assert.ErrorIs(t, err, stopErr)
	assert.ErrorIs(t, err, closeErr)
}

func TestRunnerWithoutServices(t *testing.T) {
	err := NewRunner().Run(context.Background(), time.Second, nil)
	require.Error(t, err)
}

func TestNormalizeOptions(t *testing.T) {
	opts := normalizeOptions(Options{Mode: "  API "})
	assert.Equal(t, ModeAPI, opts.Mode)
	assert.Equal(t, 10*time.Second, opts.ShutdownTimeout)
	assert.NotNil(t, opts.Logger)

	assert.Equal(t, ModeAll, normalizeOptions(Options{}).Mode)
	assert.True(t, isValidMode(ModeWorker))
	assert.False(t, isValidMode("cron"))
}

func TestBuildRunnerRejectsUnknownMode(t *testing.T) {
	_, err := buildRunner(nil, "cron", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown mode"))
}
