package tasks

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vAhyThe/words/internal/entities"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg, zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg, zerolog.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, client)

	_, err = os.Stat(filepath.Join(tmpDir, "test-tasks.db"))
	assert.NoError(t, err, "tasks database should be created")

	assert.NoError(t, client.Close())
}

func TestTasksDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "words-tasks.db"), TasksDBPath(filepath.Join("data", "words.db")))
	assert.Equal(t, "words-tasks", TasksDBPath("words"))
}

func TestClientStartStop(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
}

func TestClientStopWithoutStart(t *testing.T) {
	client := newTestClient(t)

	assert.True(t, client.Stop(context.Background()))
}

// recordingAppender records AppendMore calls.
type recordingAppender struct {
	mu    sync.Mutex
	calls []AppendWordsTask
	err   error
	done  chan struct{}
}

func (r *recordingAppender) AppendMore(batchSize int, language string) ([]entities.WordEntry, error) {
	r.mu.Lock()
	r.calls = append(r.calls, AppendWordsTask{BatchSize: batchSize, Language: language})
	r.mu.Unlock()
	if r.done != nil {
		r.done <- struct{}{}
	}
	if r.err != nil {
		return nil, r.err
	}
	return make([]entities.WordEntry, batchSize), nil
}

func TestAppendWordsTaskConfig(t *testing.T) {
	cfg := AppendWordsTask{BatchSize: 20}.Config()

	assert.Equal(t, AppendWordsQueueName, cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestAppendWordsProcessor(t *testing.T) {
	t.Run("calls appender", func(t *testing.T) {
		appender := &recordingAppender{}
		process := AppendWordsProcessor(appender, zerolog.New(io.Discard))

		err := process(context.Background(), AppendWordsTask{BatchSize: 5, Language: "de"})

		require.NoError(t, err)
		assert.Equal(t, []AppendWordsTask{{BatchSize: 5, Language: "de"}}, appender.calls)
	})

	t.Run("wraps appender error", func(t *testing.T) {
		sentinel := errors.New("rejected")
		process := AppendWordsProcessor(&recordingAppender{err: sentinel}, zerolog.New(io.Discard))

		err := process(context.Background(), AppendWordsTask{BatchSize: 0})

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil appender", func(t *testing.T) {
		process := AppendWordsProcessor(nil, zerolog.New(io.Discard))

		assert.Error(t, process(context.Background(), AppendWordsTask{BatchSize: 1}))
	})
}

func TestAppendWordsQueue_EndToEnd(t *testing.T) {
	client := newTestClient(t)

	appender := &recordingAppender{done: make(chan struct{}, 1)}
	client.Register(NewAppendWordsQueue(appender, zerolog.New(io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	id, err := client.Enqueue(ctx, AppendWordsTask{BatchSize: 3, Language: "cs"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	select {
	case <-appender.done:
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}

	appender.mu.Lock()
	assert.Equal(t, []AppendWordsTask{{BatchSize: 3, Language: "cs"}}, appender.calls)
	appender.mu.Unlock()

	require.Eventually(t, func() bool {
		status, err := client.Status(ctx, id)
		return err == nil && status == backlite.TaskStatusSuccess
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "pending", StatusName(backlite.TaskStatusPending))
	assert.Equal(t, "running", StatusName(backlite.TaskStatusRunning))
	assert.Equal(t, "success", StatusName(backlite.TaskStatusSuccess))
	assert.Equal(t, "failure", StatusName(backlite.TaskStatusFailure))
	assert.Equal(t, "not_found", StatusName(backlite.TaskStatusNotFound))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 5*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
