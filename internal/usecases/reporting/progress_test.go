package reporting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
)

type fakeDisplay struct {
	mu      sync.Mutex
	sent    []string
	edits   []string
	deletes int
	editErr error
	edited  chan struct{}
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{edited: make(chan struct{}, 64)}
}

func (d *fakeDisplay) Send(ctx context.Context, text string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, text)
	return "msg-1", nil
}

func (d *fakeDisplay) Edit(ctx context.Context, handle string, text string) error {
	d.mu.Lock()
	d.edits = append(d.edits, text)
	err := d.editErr
	d.mu.Unlock()

	d.edited <- struct{}{}
	return err
}

func (d *fakeDisplay) Delete(ctx context.Context, handle string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deletes++
	return nil
}

func (d *fakeDisplay) snapshot() ([]string, []string, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.sent...), append([]string(nil), d.edits...), d.deletes
}

func newManualRunner(display Display, maxTicks int) (*Runner, chan time.Time) {
	ticks := make(chan time.Time)
	runner := NewRunner(display, time.Second, maxTicks)
	runner.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return ticks, func() {}
	}
	return runner, ticks
}

func runAsync(runner *Runner, pipeline Pipeline) <-chan outcome {
	result := make(chan outcome, 1)
	go func() {
		path, err := runner.Run(context.Background(), "title", pipeline)
		result <- outcome{path: path, err: err}
	}()
	return result
}

func TestRunner_RendersStageChangesAndEllipsis(t *testing.T) {
	display := newFakeDisplay()
	runner, ticks := newManualRunner(display, 10)

	advance := make(chan Stage)
	applied := make(chan struct{})
	finish := make(chan struct{})

	result := runAsync(runner, func(ctx context.Context, progress *ProgressCell) (string, error) {
		for {
			select {
			case stage := <-advance:
				progress.Set(stage)
				applied <- struct{}{}
			case <-finish:
				return "report.xlsx", nil
			}
		}
	})

	setStage := func(stage Stage) {
		advance <- stage
		<-applied
	}
	tick := func() {
		ticks <- time.Now()
		<-display.edited
	}

	setStage(StageFetch) // tick 0
	tick()
	setStage(StageProcess) // tick 1
	tick()
	tick()
	setStage(StageSpreadsheet) // tick 2
	tick()
	close(finish) // tick 2.5

	res := <-result
	require.NoError(t, res.err)
	assert.Equal(t, "report.xlsx", res.path)

	sent, edits, deletes := display.snapshot()
	assert.Equal(t, []string{DefaultStages[StageInit]}, sent)
	assert.Equal(t, []string{
		DefaultStages[StageFetch],
		DefaultStages[StageProcess],
		DefaultStages[StageProcess] + "...",
		DefaultStages[StageSpreadsheet],
	}, edits)
	assert.Equal(t, 1, deletes)
}

func TestRunner_UnchangedStageAnimates(t *testing.T) {
	display := newFakeDisplay()
	runner, ticks := newManualRunner(display, 10)
	finish := make(chan struct{})

	result := runAsync(runner, func(ctx context.Context, progress *ProgressCell) (string, error) {
		<-finish
		return "ok", nil
	})

	for i := 0; i < 4; i++ {
		ticks <- time.Now()
		<-display.edited
	}
	close(finish)
	require.NoError(t, (<-result).err)

	_, edits, deletes := display.snapshot()
	initText := DefaultStages[StageInit]
	assert.Equal(t, []string{initText + ".", initText + "..", initText + "...", initText + "."}, edits)
	assert.Equal(t, 1, deletes)
}

func TestRunner_Timeout(t *testing.T) {
	display := newFakeDisplay()
	runner, ticks := newManualRunner(display, 2)
	canceled := make(chan struct{})

	result := runAsync(runner, func(ctx context.Context, progress *ProgressCell) (string, error) {
		<-ctx.Done()
		close(canceled)
		return "", ctx.Err()
	})

	ticks <- time.Now()
	<-display.edited
	ticks <- time.Now()
	<-display.edited
	ticks <- time.Now()

	res := <-result
	assert.ErrorIs(t, res.err, ErrTimeout)
	assert.Empty(t, res.path)

	select {
	case <-canceled:
	default:
		t.Fatal("pipeline context was not canceled")
	}

	_, edits, deletes := display.snapshot()
	assert.Len(t, edits, 2)
	assert.Equal(t, 1, deletes)
}

func TestRunner_TimeoutDiscardsLateArtifact(t *testing.T) {
	display := newFakeDisplay()
	runner, ticks := newManualRunner(display, 1)
	path := filepath.Join(t.TempDir(), "report2024-03-04.xlsx")

	result := runAsync(runner, func(ctx context.Context, progress *ProgressCell) (string, error) {
		<-ctx.Done()
		// a escrita da planilha não observa o contexto
		if err := os.WriteFile(path, []byte("xlsx"), 0o644); err != nil {
			return "", err
		}
		return path, nil
	})

	ticks <- time.Now()
	<-display.edited
	ticks <- time.Now()

	res := <-result
	assert.ErrorIs(t, res.err, ErrTimeout)
	assert.NoFileExists(t, path)
}

func TestRunner_CallerCancellationDiscardsArtifact(t *testing.T) {
	display := newFakeDisplay()
	runner, _ := newManualRunner(display, 10)
	path := filepath.Join(t.TempDir(), "report2024-03-04.xlsx")
	ctx, cancel := context.WithCancel(context.Background())

	_, err := runner.Run(ctx, "title", func(pipelineCtx context.Context, progress *ProgressCell) (string, error) {
		cancel()
		if err := os.WriteFile(path, []byte("xlsx"), 0o644); err != nil {
			return "", err
		}
		return path, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
	_, _, deletes := display.snapshot()
	assert.Equal(t, 1, deletes)
}

func TestRunner_PipelinePanicBecomesError(t *testing.T) {
	display := newFakeDisplay()
	runner, _ := newManualRunner(display, 10)

	_, err := runner.Run(context.Background(), "title", func(ctx context.Context, progress *ProgressCell) (string, error) {
		var totals map[string]float64
		totals["111"] = 1
		return "report.xlsx", nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPipelinePanic)
	assert.Equal(t, apiErrors.ErrInternalServer, ErrorCode(err))
	_, _, deletes := display.snapshot()
	assert.Equal(t, 1, deletes)
}

func TestRunner_ErrorMapping(t *testing.T) {
	generic := errors.New("unexpected")

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "marketplace rejection becomes credential error",
			err:     &wbdomain.StatusError{StatusCode: 401, Endpoint: "/api/v1/paid_storage"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "no data passes through",
			err:     ErrNoData,
			wantErr: ErrNoData,
		},
		{
			name:    "unclassified error propagates",
			err:     generic,
			wantErr: generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := newFakeDisplay()
			runner, _ := newManualRunner(display, 10)

			_, err := runner.Run(context.Background(), "title", func(ctx context.Context, progress *ProgressCell) (string, error) {
				return "", tt.err
			})

			assert.ErrorIs(t, err, tt.wantErr)
			_, _, deletes := display.snapshot()
			assert.Equal(t, 1, deletes)
		})
	}
}

func TestRunner_EditFailureDoesNotStopLoop(t *testing.T) {
	display := newFakeDisplay()
	display.editErr = errors.New("message is not modified")
	runner, ticks := newManualRunner(display, 10)
	finish := make(chan struct{})

	result := runAsync(runner, func(ctx context.Context, progress *ProgressCell) (string, error) {
		<-finish
		return "ok", nil
	})

	ticks <- time.Now()
	<-display.edited
	ticks <- time.Now()
	<-display.edited
	close(finish)

	res := <-result
	require.NoError(t, res.err)
	assert.Equal(t, "ok", res.path)
}

func TestProgressCell(t *testing.T) {
	cell := NewProgressCell(StageInit)
	assert.Equal(t, StageInit, cell.Stage())

	cell.Set(StageProcess)
	assert.Equal(t, StageProcess, cell.Stage())
}
